package dissect

type Medal uint64

//go:generate stringer -type=Medal -linecomment
const (
	MedalMVP    Medal = iota + 1 // MVP
	MedalGold                    // GOLD
	MedalSilver                  // SILVER
	MedalBronze                  // BRONZE
)

type Role uint64

//go:generate stringer -type=Role -linecomment
const (
	RoleExp    Role = iota + 1 // EXP
	RoleMid                    // MID
	RoleRoam                   // ROAM
	RoleJungle                 // JNG
	RoleGold                   // GOLD
)

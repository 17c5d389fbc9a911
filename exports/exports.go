package main

// #include <stdlib.h>
import "C"
import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"unsafe"

	"github.com/mlbb-analyst/his-dissect/dissect"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

func marshalToString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{\"error\":\"something went wrong during json Marshal\"}"
	}
	return string(b)
}

func convertForExport(v any) string {
	type export struct {
		Data any `json:"data"`
	}
	return marshalToString(export{
		Data: v,
	})
}

func convertErrorForExport(err error) string {
	type export struct {
		Error string `json:"error"`
	}
	return marshalToString(export{
		Error: err.Error(),
	})
}

// options reads the item gap and label overrides from HIS_ environment
// variables, with HIS_CONFIG naming an optional config file.
func options() ([]dissect.Option, dissect.Labels, error) {
	v := viper.New()
	v.SetEnvPrefix("his")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if config := v.GetString("config"); len(config) > 0 {
		v.SetConfigFile(config)
		if err := v.ReadInConfig(); err != nil {
			return nil, dissect.Labels{}, err
		}
	}
	labels, err := dissect.DefaultLabels().Merge(
		v.GetStringMapString("labels.medal"),
		v.GetStringMapString("labels.role"),
	)
	if err != nil {
		return nil, dissect.Labels{}, err
	}
	return []dissect.Option{dissect.WithItemGap(v.GetInt("item-gap"))}, labels, nil
}

// read parses a history file or a FightHistory folder into the JSON export.
func read(path string) string {
	opts, labels, err := options()
	if err != nil {
		return convertErrorForExport(err)
	}
	s, err := os.Stat(path)
	if err != nil {
		if dissect.Missing(err) {
			err = dissect.ErrMissingInput
		}
		return convertErrorForExport(err)
	}
	files := []dissect.HistoryFile{dissect.NewHistoryFile(path)}
	if s.IsDir() {
		if files, err = dissect.ListHistoryFiles(path); err != nil {
			return convertErrorForExport(err)
		}
	}
	matches := dissect.ReadHistory(context.Background(), files, 0, opts...)
	if !s.IsDir() && matches[0].Err != nil {
		return convertErrorForExport(matches[0].Err)
	}
	return convertForExport(dissect.Data(matches, labels))
}

//export dissect_read
func dissect_read(input *C.char) *C.char {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	return C.CString(read(C.GoString(input)))
}

//export dissect_free
func dissect_free(s *C.char) {
	C.free(unsafe.Pointer(s))
}

func main() {}

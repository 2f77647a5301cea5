// File: caep/load_test.go
package caep

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type arguments struct {
	StrArg   string            `caep:"str_arg" help:"Required string argument" validate:"required"`
	Number   int               `caep:"number" help:"Integer with default value"`
	Enabled  bool              `caep:"enabled" help:"Boolean with default value"`
	Flag1    bool              `caep:"flag1" help:"Boolean with default value"`
	FloatArg float64           `caep:"float_arg" help:"Float with default value"`
	IntList  []int             `caep:"intlist" help:"Space separated list of ints" split:" "`
	StrList  []string          `caep:"strlist" help:"Comma separated list of strings"`
	DictStr  map[string]string `caep:"dict_str" help:"String dict split by comma and colon"`
	DictInt  map[string]int    `caep:"dict_int" help:"Int dict split by dash and slash" split:"-" kvsplit:"/"`
}

func newArguments() arguments {
	return arguments{Number: 1, Flag1: true, FloatArg: 0.5}
}

const iniTestData = `
[DEFAULT]
number = 2

[test]
number = 3
str_arg = from ini
enabled = true
`

func loadArguments(t *testing.T, args []string, environ map[string]string) (arguments, error) {
	t.Helper()

	cfg := newArguments()
	err := Load(&cfg, Options{
		Name:                   "test",
		Description:            "Program description",
		Section:                "test",
		Args:                   args,
		Environ:                environ,
		Output:                 io.Discard,
		RaiseOnValidationError: true,
	})
	return cfg, err
}

func TestLoadCommandLine(t *testing.T) {
	t.Run("ScalarsAndBoolSet", func(t *testing.T) {
		cfg, err := loadArguments(t, []string{"--str-arg", "test", "--enabled"}, map[string]string{})
		require.NoError(t, err)

		assert.Equal(t, "test", cfg.StrArg)
		assert.Equal(t, 1, cfg.Number)
		assert.Equal(t, 0.5, cfg.FloatArg)
		assert.True(t, cfg.Enabled)
		assert.True(t, cfg.Flag1) // default true preserved
	})

	t.Run("BoolWithTrueDefaultIsCleared", func(t *testing.T) {
		cfg, err := loadArguments(t, []string{"--str-arg", "test", "--flag1"}, map[string]string{})
		require.NoError(t, err)
		assert.False(t, cfg.Flag1)
	})

	t.Run("EscapedList", func(t *testing.T) {
		cfg, err := loadArguments(t, []string{"--str-arg", "test", "--strlist", `A\,B\,C,1\,2\,3`}, map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, []string{"A,B,C", "1,2,3"}, cfg.StrList)
	})

	t.Run("SpaceSplitIntList", func(t *testing.T) {
		cfg, err := loadArguments(t, []string{"--str-arg", "test", "--intlist", "1 2 3"}, map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, cfg.IntList)
	})

	t.Run("DictStr", func(t *testing.T) {
		cfg, err := loadArguments(t,
			[]string{"--str-arg", "test", "--dict-str", "header 1: x option, header 2: y option"},
			map[string]string{})
		require.NoError(t, err)

		assert.Equal(t, "x option", cfg.DictStr["header 1"])
		assert.Equal(t, "y option", cfg.DictStr["header 2"])
	})

	t.Run("DictInt", func(t *testing.T) {
		cfg, err := loadArguments(t, []string{"--str-arg", "test", "--dict-int", "a/1-b/2"}, map[string]string{})
		require.NoError(t, err)

		assert.Equal(t, 1, cfg.DictInt["a"])
		assert.Equal(t, 2, cfg.DictInt["b"])
	})

	t.Run("UnknownFlag", func(t *testing.T) {
		_, err := loadArguments(t, []string{"--str-arg", "test", "--bogus"}, map[string]string{})
		assert.ErrorIs(t, err, ErrCLIParse)
	})
}

func TestLoadPrecedence(t *testing.T) {
	t.Run("FileSection", func(t *testing.T) {
		path := writeFile(t, "config.ini", iniTestData)

		cfg, err := loadArguments(t, []string{"--config", path}, map[string]string{})
		require.NoError(t, err)

		assert.Equal(t, 3, cfg.Number) // section beats DEFAULT
		assert.Equal(t, "from ini", cfg.StrArg)
		assert.True(t, cfg.Enabled)
		assert.True(t, cfg.Flag1)
	})

	t.Run("EnvironmentOnly", func(t *testing.T) {
		cfg, err := loadArguments(t, []string{}, map[string]string{
			"STR_ARG": "from env",
			"NUMBER":  "4",
			"ENABLED": "yes",
		})
		require.NoError(t, err)

		assert.Equal(t, "from env", cfg.StrArg)
		assert.Equal(t, 4, cfg.Number)
		assert.True(t, cfg.Enabled)
	})

	t.Run("EnvironmentBeatsFile", func(t *testing.T) {
		path := writeFile(t, "config.ini", iniTestData)

		cfg, err := loadArguments(t, []string{"--config", path}, map[string]string{"NUMBER": "4"})
		require.NoError(t, err)

		assert.Equal(t, 4, cfg.Number)
		assert.Equal(t, "from ini", cfg.StrArg)
		assert.True(t, cfg.Enabled)
	})

	t.Run("CommandLineBeatsEverything", func(t *testing.T) {
		path := writeFile(t, "config.ini", iniTestData)

		cfg, err := loadArguments(t,
			[]string{"--config", path, "--str-arg", "cmdline", "--number", "10"},
			map[string]string{"NUMBER": "4", "STR_ARG": "from env"})
		require.NoError(t, err)

		assert.Equal(t, "cmdline", cfg.StrArg)
		assert.Equal(t, 10, cfg.Number)
	})

	t.Run("CollectionFromFileIsSplit", func(t *testing.T) {
		path := writeFile(t, "config.ini", `
[test]
str_arg = x
strlist = a,b,c
dict_str = k:v
`)

		cfg, err := loadArguments(t, []string{"--config", path}, map[string]string{})
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b", "c"}, cfg.StrList)
		assert.Equal(t, map[string]string{"k": "v"}, cfg.DictStr)
	})

	t.Run("CollectionFromEnvironmentIsSplit", func(t *testing.T) {
		cfg, err := loadArguments(t, []string{"--str-arg", "x"}, map[string]string{"INTLIST": "5 6"})
		require.NoError(t, err)
		assert.Equal(t, []int{5, 6}, cfg.IntList)
	})
}

func TestLoadDefaults(t *testing.T) {
	t.Run("DeclaredCollectionDefaultsSurvive", func(t *testing.T) {
		type config struct {
			Tags   []string       `caep:"tags"`
			Limits map[string]int `caep:"limits"`
		}

		cfg := config{
			Tags:   []string{"a", "b,c"},
			Limits: map[string]int{"read": 10},
		}
		err := Load(&cfg, Options{
			Name: "test", Args: []string{}, Environ: map[string]string{},
			Output: io.Discard, RaiseOnValidationError: true,
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"a", "b,c"}, cfg.Tags)
		assert.Equal(t, map[string]int{"read": 10}, cfg.Limits)
	})

	t.Run("PointerScalarWithoutSourcesStaysNil", func(t *testing.T) {
		type config struct {
			Port *int `caep:"port"`
		}

		cfg := config{}
		err := Load(&cfg, Options{
			Name: "test", Args: []string{}, Environ: map[string]string{},
			Output: io.Discard, RaiseOnValidationError: true,
		})
		require.NoError(t, err)
		assert.Nil(t, cfg.Port)

		err = Load(&cfg, Options{
			Name: "test", Args: []string{}, Environ: map[string]string{"PORT": "8080"},
			Output: io.Discard, RaiseOnValidationError: true,
		})
		require.NoError(t, err)
		require.NotNil(t, cfg.Port)
		assert.Equal(t, 8080, *cfg.Port)
	})
}

func TestLoadValidation(t *testing.T) {
	t.Run("MissingRequiredRaised", func(t *testing.T) {
		_, err := loadArguments(t, []string{}, map[string]string{})

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "str-arg", verr.Fields[0].Flag)
		assert.Equal(t, "missing required value", verr.Fields[0].Message)
	})

	t.Run("MissingRequiredPrintsUsageAndExits", func(t *testing.T) {
		defer func(old func(int)) { exit = old }(exit)
		code := -1
		exit = func(c int) { code = c }

		var buf bytes.Buffer
		cfg := newArguments()
		err := Load(&cfg, Options{
			Name:    "test",
			Section: "test",
			Args:    []string{},
			Environ: map[string]string{},
			Output:  &buf,
		})

		require.Error(t, err)
		assert.Equal(t, 1, code)
		assert.Contains(t, buf.String(), "missing required value for --str-arg")
		assert.Contains(t, buf.String(), "--number")
	})

	t.Run("MinimumCollectionSize", func(t *testing.T) {
		type config struct {
			Pair []string `caep:"pair" min:"2"`
		}

		cfg := config{}
		err := Load(&cfg, Options{
			Name: "test", Args: []string{"--pair", "only"}, Environ: map[string]string{},
			Output: io.Discard, RaiseOnValidationError: true,
		})

		var fieldErr *FieldError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, "pair", fieldErr.Field)
	})

	t.Run("ConfigIDWithoutName", func(t *testing.T) {
		cfg := newArguments()
		err := Load(&cfg, Options{
			Name: "test", ConfigID: "myapp", Args: []string{}, Environ: map[string]string{},
			Output: io.Discard, RaiseOnValidationError: true,
		})
		assert.ErrorIs(t, err, ErrArgument)
	})

	t.Run("BadScalarFromEnvironment", func(t *testing.T) {
		_, err := loadArguments(t, []string{"--str-arg", "x"}, map[string]string{"NUMBER": "twelve"})
		require.Error(t, err)

		var fieldErr *FieldError
		assert.NotErrorAs(t, err, &fieldErr)
	})
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuminhwan/calculator/internal/config"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected config.Config
		err      string
	}{
		{"empty", "", config.Default(), ""},
		{
			"partial",
			"decimal_places: 4\nexpression_prompt: 'calc> '\n",
			config.Config{MenuPrompt: "menu> ", ExpressionPrompt: "calc> ", DecimalPlaces: 4, DivisionPrecision: 16},
			"",
		},
		{
			"zero places",
			"decimal_places: 0\n",
			config.Config{MenuPrompt: "menu> ", ExpressionPrompt: "> ", DecimalPlaces: 0, DivisionPrecision: 16},
			"",
		},
		{"negative places", "decimal_places: -1\n", config.Config{}, "decimal_places must not be negative"},
		{"precision below places", "decimal_places: 8\ndivision_precision: 4\n", config.Config{}, "division_precision (4) must be at least decimal_places (8)"},
		{"invalid yaml", "decimal_places: [\n", config.Config{}, "parse config"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			cfg, err := config.Parse([]byte(tc.input))
			if tc.err != "" {
				assert.ErrorContains(tt, err, tc.err)
				return
			}
			require.NoError(tt, err)
			assert.Equal(tt, tc.expected, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "calc.yml")
	require.NoError(t, os.WriteFile(path, []byte("menu_prompt: '? '\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "? ", cfg.MenuPrompt)

	_, err = config.Load(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}

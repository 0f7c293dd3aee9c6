package docs

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	t.Run("summary is the first paragraph", func(t *testing.T) {
		summary, description := Split(`
			Synchronise two trees.
			Fast by default.

			Further detail here.
		`)

		assert.Equal(t, "Synchronise two trees. Fast by default.", summary)
		assert.Equal(t, "Synchronise two trees.\nFast by default.\n\nFurther detail here.", description)
	})

	t.Run("empty text", func(t *testing.T) {
		summary, description := Split("   \n\t\n")

		assert.Empty(t, summary)
		assert.Empty(t, description)
	})

	t.Run("single line", func(t *testing.T) {
		summary, description := Split("Upload changes.")

		assert.Equal(t, "Upload changes.", summary)
		assert.Equal(t, "Upload changes.", description)
	})
}

func TestDedent(t *testing.T) {
	got := Dedent("\t\tfirst\n\t\t\tindented\n\t\tlast\n")

	assert.Equal(t, "first\n\tindented\nlast\n", got)
}

func TestParamHelp(t *testing.T) {
	type args struct {
		Source string `help:"path to read"`
		Limit  int
	}

	help := ParamHelp(reflect.TypeOf(args{}))

	assert.Equal(t, map[string]string{"Source": "path to read"}, help)
	assert.Empty(t, ParamHelp(nil))
}

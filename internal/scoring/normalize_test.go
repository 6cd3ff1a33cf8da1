package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_LowercasesAndStripsPunctuation(t *testing.T) {
	got := Normalize("Led Platform Strategy! (and execution).")
	assert.Equal(t, "led platform strategy and execution", got)
}

func TestNormalize_PreservesHyphensAndArrows(t *testing.T) {
	assert.Equal(t, "fast-paced go-live", Normalize("Fast-paced, go-live!"))
	assert.Equal(t, "0→1 delivery", Normalize("0→1 delivery"))
	// ASCII arrow: the hyphen survives, the '>' becomes a space.
	assert.Equal(t, "0- 1 delivery", Normalize("0->1 delivery"))
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("  shipped\t\tfast\n\nand  often ")
	assert.Equal(t, "shipped fast and often", got)
}

func TestNormalize_EmptyString(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("  \t\n "))
	assert.Equal(t, "", Normalize("!!! ??? ..."))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello, World!",
		"fast-paced 0→1 delivery; under PRESSURE!!",
		"  spaced   out  ",
		"Ünïcode Résumé",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_CompatibilityFolding(t *testing.T) {
	// Full-width characters fold to their ASCII forms under NFKC.
	assert.Equal(t, "ship", Normalize("ｓｈｉｐ"))
}

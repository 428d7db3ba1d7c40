package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const before = `[
  {
    "uri": "https://www.r-project.org/",
    "id": "r",
    "description": "A free software environment for statistical computing and graphics.",
    "keywords": []
  }
]
`

const after = `[
  {
    "uri": "https://www.r-project.org/",
    "id": "r",
    "description": "A free software environment for statistical computing and graphics.",
    "keywords": []
  },
  {
    "uri": "https://stdlib.io/",
    "id": "stdlib",
    "description": "A standard library for JavaScript and Node.js.",
    "keywords": []
  }
]
`

func TestComputeInsert(t *testing.T) {
	r := Compute(before, after, "a/links.json", "b/links.json")

	assert.True(t, r.Changed())
	assert.Contains(t, r.Diff, `+     "uri": "https://stdlib.io/",`)
	assert.Contains(t, r.Diff, `+     "id": "stdlib",`)
	assert.Contains(t, r.Diff, `+   },`)
	assert.NotContains(t, r.Diff, `- [`, "unchanged lines must not be reported as removed")

	for _, line := range strings.Split(strings.TrimSuffix(r.Diff, "\n"), "\n") {
		assert.Regexp(t, `^(\+ |- |  )`, line)
	}
}

func TestComputeCollapsesLongContext(t *testing.T) {
	r := Compute(before, after, "a", "b")
	assert.Contains(t, r.Diff, "  ...\n")
	assert.NotContains(t, r.Diff, "  [\n", "leading context far from the change is collapsed")
}

func TestComputeNoChange(t *testing.T) {
	r := Compute(before, before, "a", "b")
	assert.False(t, r.Changed())
}

func TestString(t *testing.T) {
	r := Result{Old: "a/links.json", New: "b/links.json", Diff: "+ x\n"}
	assert.Equal(t, "--- a/links.json\n+++ b/links.json\n+ x\n", r.String())
}

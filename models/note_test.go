package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePerson(t *testing.T) {
	assert.Equal(t, PersonEli, NormalizePerson("Eli"))
	assert.Equal(t, PersonFuad, NormalizePerson("Fuad"))

	// nilai tak dikenal jatuh diam-diam ke Fuad
	for _, s := range []string{"", "eli", "ELI", "Bob", " Eli "} {
		assert.Equal(t, PersonFuad, NormalizePerson(s), "input %q", s)
	}
}

func TestValidateContent(t *testing.T) {
	content, errMsg := ValidateContent("  hi  ")
	assert.Empty(t, errMsg)
	assert.Equal(t, "hi", content)

	_, errMsg = ValidateContent("")
	assert.Equal(t, "Isi catatan tidak boleh kosong.", errMsg)

	_, errMsg = ValidateContent("   \n\t ")
	assert.Equal(t, "Isi catatan tidak boleh kosong.", errMsg)

	content, errMsg = ValidateContent(strings.Repeat("a", MaxContentLength))
	assert.Empty(t, errMsg)
	assert.Len(t, content, MaxContentLength)

	_, errMsg = ValidateContent(strings.Repeat("a", MaxContentLength+1))
	assert.Equal(t, "Isi catatan maksimal 2000 karakter.", errMsg)

	// batas dihitung setelah trim
	_, errMsg = ValidateContent("  " + strings.Repeat("a", MaxContentLength) + "  ")
	assert.Empty(t, errMsg)
}

package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify_FoldsTurkishLetters(t *testing.T) {
	assert.Equal(t, "guzellik-salonu", Slugify("Güzellik Salonu"))
	assert.Equal(t, "isik-berber", Slugify("Işık Berber"))
	assert.Equal(t, "cigdem-kuafor", Slugify("Çiğdem Kuaför"))
}

func TestSlugify_CollapsesSeparators(t *testing.T) {
	assert.Equal(t, "ali-nin-yeri", Slugify("  Ali'nin   Yeri!  "))
	assert.Equal(t, "salon-34", Slugify("Salon #34"))
}

func TestSlugify_Empty(t *testing.T) {
	assert.Equal(t, "", Slugify("!!!"))
	assert.Equal(t, "", Slugify(""))
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Acme", "acme"},
		{"Acme Widget", "acme-widget"},
		{"  Spaced  Out  ", "spaced-out"},
		{"Café Crème", "cafe-creme"},
		{"100% Cotton T-Shirt", "100-cotton-t-shirt"},
		{"UPPER case", "upper-case"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.name), tc.name)
	}
}

func TestSlugify_Stable(t *testing.T) {
	// same name always yields the same slug
	assert.Equal(t, Slugify("Gamma Ray"), Slugify("Gamma Ray"))
}

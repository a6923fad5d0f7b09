package refdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bursary-go/refdata"
)

func TestDefaultMembership(t *testing.T) {
	tables := refdata.Default()

	assert.True(t, tables.ValidTitle("Mr."))
	assert.True(t, tables.ValidTitle("Rev."))
	assert.False(t, tables.ValidTitle("Dr."))
	assert.False(t, tables.ValidTitle(""))

	assert.True(t, tables.ValidDistrict("Jaffna"))
	assert.True(t, tables.ValidDistrict(refdata.NotAvailable))
	assert.False(t, tables.ValidDistrict("Jafna"))

	assert.True(t, tables.ValidFaculty("Science"))
	assert.False(t, tables.ValidFaculty(refdata.NotAvailable))

	assert.True(t, tables.ValidCourse("Computer Science"))
	assert.False(t, tables.ValidCourse(refdata.NotAvailable))
}

func TestDivisionsBelongToTheirDistrict(t *testing.T) {
	tables := refdata.Default()

	require.NotEmpty(t, refdata.DSDivisions)
	for district, divisions := range refdata.DSDivisions {
		assert.True(t, tables.ValidDistrict(district), "district %q has divisions but is not a valid district", district)
		require.NotEmpty(t, divisions, "district %q has no divisions", district)
		for _, division := range divisions {
			assert.True(t, tables.ValidDivision(district, division))
		}
	}
}

func TestValidDivision(t *testing.T) {
	tables := refdata.Default()

	assert.True(t, tables.ValidDivision("Jaffna", "Nallur"))
	assert.False(t, tables.ValidDivision("Jaffna", "Homagama"), "Homagama belongs to Colombo")
	assert.False(t, tables.ValidDivision("Jaffna", refdata.NotAvailable))
	assert.False(t, tables.ValidDivision(refdata.NotAvailable, "Nallur"), "the N/A district has no division set")
	assert.Nil(t, tables.DivisionsOf(refdata.NotAvailable))
}

func TestRestrictedDouble(t *testing.T) {
	tables := refdata.New(
		[]string{"Mr."},
		[]string{refdata.NotAvailable, "Jaffna"},
		[]string{"Science"},
		[]string{"Computer Science"},
		map[string][]string{"Jaffna": {"Nallur"}},
	)

	assert.True(t, tables.ValidDistrict("Jaffna"))
	assert.False(t, tables.ValidDistrict("Colombo"))
	assert.Equal(t, []string{"Nallur"}, tables.DivisionsOf("Jaffna"))
}

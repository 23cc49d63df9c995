package extregistry

import (
	"errors"
	"testing"

	"github.com/specialistvlad/vkcapgen/internal/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(name string, specVersion int) Record {
	return Record{Name: name, SpecVersion: specVersion, Enablement: predicate.AlwaysEnabled()}
}

func TestValidate_Unique(t *testing.T) {
	r := New(
		rec("VK_KHR_surface", 25),
		rec("VK_KHR_swapchain", 68),
		rec("VK_EXT_debug_report", 9),
	)
	require.NoError(t, r.Validate())
	assert.Equal(t, []string{"VK_EXT_debug_report", "VK_KHR_surface", "VK_KHR_swapchain"}, r.SortedNames())
	assert.Equal(t, "VK_KHR_surface", r.Records()[0].Name, "declaration order must be preserved")
}

func TestValidate_Failures(t *testing.T) {
	testCases := []struct {
		name     string
		records  []Record
		sentinel error
		check    func(t *testing.T, err error)
	}{
		{
			name:     "duplicate immediately after",
			records:  []Record{rec("VK_A", 1), rec("VK_A", 1)},
			sentinel: ErrDuplicateName,
			check: func(t *testing.T, err error) {
				var dup *DuplicateName
				require.True(t, errors.As(err, &dup))
				assert.Equal(t, "VK_A", dup.Name)
				assert.Equal(t, 1, dup.Index)
				assert.Equal(t, 0, dup.FirstIndex)
			},
		},
		{
			name:     "duplicate far apart reports later record",
			records:  []Record{rec("VK_Z", 1), rec("VK_B", 1), rec("VK_C", 1), rec("VK_Z", 2)},
			sentinel: ErrDuplicateName,
			check: func(t *testing.T, err error) {
				var dup *DuplicateName
				require.True(t, errors.As(err, &dup))
				assert.Equal(t, "VK_Z", dup.Name)
				assert.Equal(t, 3, dup.Index)
				assert.Equal(t, 0, dup.FirstIndex)
			},
		},
		{
			name:     "triple occurrence points at the first declaration",
			records:  []Record{rec("VK_A", 1), rec("VK_B", 1), rec("VK_A", 1), rec("VK_A", 1)},
			sentinel: ErrDuplicateName,
			check: func(t *testing.T, err error) {
				var dup *DuplicateName
				require.True(t, errors.As(err, &dup))
				assert.Equal(t, 2, dup.Index)
				assert.Equal(t, 0, dup.FirstIndex)
			},
		},
		{
			name:     "zero spec version",
			records:  []Record{rec("VK_A", 1), rec("VK_B", 0)},
			sentinel: ErrInvalidSpecVersion,
			check: func(t *testing.T, err error) {
				var inv *InvalidSpecVersion
				require.True(t, errors.As(err, &inv))
				assert.Equal(t, "VK_B", inv.Name)
				assert.Equal(t, 0, inv.Value)
			},
		},
		{
			name:     "negative spec version",
			records:  []Record{rec("VK_A", -3)},
			sentinel: ErrInvalidSpecVersion,
		},
		{
			name:     "first failure in declaration order wins",
			records:  []Record{rec("VK_A", 1), rec("VK_B", -1), rec("VK_A", 1)},
			sentinel: ErrInvalidSpecVersion,
		},
		{
			name:     "empty name",
			records:  []Record{rec("", 1)},
			sentinel: ErrInvalidName,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := New(tc.records...).Validate()
			require.Error(t, err)
			require.ErrorIs(t, err, tc.sentinel)
			if tc.check != nil {
				tc.check(t, err)
			}
		})
	}
}

func TestAppend_DoesNotMutateReceiver(t *testing.T) {
	base := New(rec("VK_A", 1))
	grown := base.Append(rec("VK_B", 1))
	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, grown.Len())
}

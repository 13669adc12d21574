package validator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `validate:"required,notblank"`
	Env  string `validate:"oneof=development production"`
	Size int    `validate:"min=1,max=10"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      sample
		wantErr string
	}{
		{
			name: "success",
			in:   sample{Name: "term", Env: "production", Size: 3},
		},
		{
			name:    "blank name",
			in:      sample{Name: "   ", Env: "production", Size: 3},
			wantErr: "Field: Name, Tag: notblank",
		},
		{
			name:    "several failures",
			in:      sample{Name: "x", Env: "qa", Size: 11},
			wantErr: "Field: Env, Tag: oneof, Param: development production; Field: Size, Tag: max, Param: 10",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestFirstInvalidField(t *testing.T) {
	t.Parallel()

	err := ValidateStruct(sample{Name: "", Env: "production", Size: 1})
	require.Error(t, err)
	assert.Equal(t, "Name", FirstInvalidField(err))
	assert.Equal(t, "Name", FirstInvalidField(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, "", FirstInvalidField(nil))
}

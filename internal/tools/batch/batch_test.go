package batch

import "testing"

func TestParseStringOrArray(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		paramName string
		want      []string
		wantErr   bool
	}{
		{
			name:      "single string",
			input:     "Sheet1!A1:C10",
			paramName: "ranges",
			want:      []string{"Sheet1!A1:C10"},
			wantErr:   false,
		},
		{
			name:      "array of strings",
			input:     []interface{}{"primary", "team@example.com"},
			paramName: "calendarIds",
			want:      []string{"primary", "team@example.com"},
			wantErr:   false,
		},
		{
			name:      "nil input",
			input:     nil,
			paramName: "ranges",
			wantErr:   true,
		},
		{
			name:      "empty string",
			input:     "",
			paramName: "ranges",
			wantErr:   true,
		},
		{
			name:      "empty array",
			input:     []interface{}{},
			paramName: "ranges",
			wantErr:   true,
		},
		{
			name:      "array with non-string",
			input:     []interface{}{"a", 123},
			paramName: "ranges",
			wantErr:   true,
		},
		{
			name:      "array with empty string",
			input:     []interface{}{"a", ""},
			paramName: "ranges",
			wantErr:   true,
		},
		{
			name:      "invalid type",
			input:     123,
			paramName: "ranges",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringOrArray(tt.input, tt.paramName)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseStringOrArray() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !stringSliceEqual(got, tt.want) {
				t.Errorf("ParseStringOrArray() = %v, want %v", got, tt.want)
			}
		})
	}
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package validators

import "testing"

func assertBool(t *testing.T, got, want bool, context string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", context, got, want)
	}
}

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "valid bare digits",
			input: "52998224725",
			want:  true,
		},
		{
			name:  "valid with punctuation",
			input: "529.982.247-25",
			want:  true,
		},
		{
			name:  "formatted input validates same as stripped",
			input: "123.456.789-09",
			want:  true,
		},
		{
			name:  "first check digit wrong",
			input: "52998224735",
			want:  false,
		},
		{
			name:  "second check digit wrong",
			input: "52998224726",
			want:  false,
		},
		{
			name:  "all zeros",
			input: "00000000000",
			want:  false,
		},
		{
			name:  "all same digit",
			input: "11111111111",
			want:  false,
		},
		{
			name:  "too short",
			input: "5299822472",
			want:  false,
		},
		{
			name:  "too long",
			input: "529982247250",
			want:  false,
		},
		{
			name:  "empty",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertBool(t, ValidateCPF(tt.input), tt.want, "ValidateCPF("+tt.input+")")
		})
	}
}

func TestValidateCNPJ(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "valid bare digits",
			input: "11222333000181",
			want:  true,
		},
		{
			name:  "valid with punctuation",
			input: "11.222.333/0001-81",
			want:  true,
		},
		{
			name:  "first check digit wrong",
			input: "11222333000171",
			want:  false,
		},
		{
			name:  "second check digit wrong",
			input: "11222333000182",
			want:  false,
		},
		{
			name:  "all zeros",
			input: "00000000000000",
			want:  false,
		},
		{
			name:  "too short",
			input: "1122233300018",
			want:  false,
		},
		{
			name:  "empty",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertBool(t, ValidateCNPJ(tt.input), tt.want, "ValidateCNPJ("+tt.input+")")
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "landline with area code",
			input: "1133334444",
			want:  true,
		},
		{
			name:  "mobile with area code",
			input: "11933334444",
			want:  true,
		},
		{
			name:  "formatted mobile",
			input: "(11) 93333-4444",
			want:  true,
		},
		{
			name:  "nine digits",
			input: "933334444",
			want:  false,
		},
		{
			name:  "twelve digits",
			input: "119333344445",
			want:  false,
		},
		{
			name:  "leading zero with eleven digits",
			input: "01933334444",
			want:  false,
		},
		{
			name:  "empty",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertBool(t, ValidatePhone(tt.input), tt.want, "ValidatePhone("+tt.input+")")
		})
	}
}

func TestValidateCEP(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "bare digits",
			input: "01310100",
			want:  true,
		},
		{
			name:  "formatted",
			input: "01310-100",
			want:  true,
		},
		{
			name:  "seven digits",
			input: "0131010",
			want:  false,
		},
		{
			name:  "nine digits",
			input: "013101001",
			want:  false,
		},
		{
			name:  "empty",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertBool(t, ValidateCEP(tt.input), tt.want, "ValidateCEP("+tt.input+")")
		})
	}
}

func TestFormatCEP(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare digits get separator",
			input: "01310100",
			want:  "01310-100",
		},
		{
			name:  "already formatted round trips",
			input: "01310-100",
			want:  "01310-100",
		},
		{
			name:  "partial input stays bare",
			input: "01310",
			want:  "01310",
		},
		{
			name:  "six digits",
			input: "013101",
			want:  "01310-1",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCEP(tt.input)
			if got != tt.want {
				t.Errorf("FormatCEP(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

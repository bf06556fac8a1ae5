package host

import "testing"

func TestParseHead(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    Commit
		wantOK  bool
	}{
		{
			name:   "normal commit",
			out:    "a1b2c3d\x00fix: correct off-by-one\n",
			want:   Commit{Hash: "a1b2c3d", Message: "fix: correct off-by-one"},
			wantOK: true,
		},
		{
			name:   "empty subject",
			out:    "a1b2c3d\x00",
			want:   Commit{Hash: "a1b2c3d"},
			wantOK: true,
		},
		{"empty output", "", Commit{}, false},
		{"no separator", "garbage", Commit{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseHead(tt.out)
			if ok != tt.wantOK {
				t.Fatalf("parseHead ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("parseHead = %+v, want %+v", got, tt.want)
			}
		})
	}
}

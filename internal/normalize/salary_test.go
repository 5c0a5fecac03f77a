package normalize

import "testing"

func TestConvertSalary(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantSalary  string
		wantEnglish string
	}{
		{
			name:        "range without equity",
			raw:         "$140k – $180k",
			wantSalary:  "84-108K",
			wantEnglish: "84-108K",
		},
		{
			name:        "range with equity",
			raw:         "$140k – $180k • 0.02% – 0.4%",
			wantSalary:  "84-108K·0.02%–0.4%股",
			wantEnglish: "84-108K·0.02%–0.4%",
		},
		{
			name:        "single value",
			raw:         "$120k",
			wantSalary:  "72K",
			wantEnglish: "72K",
		},
		{
			name:        "equal min and max collapse",
			raw:         "$100k – $100k",
			wantSalary:  "60K",
			wantEnglish: "60K",
		},
		{
			name:        "no equity text is dropped",
			raw:         "$60k – $90k • No equity",
			wantSalary:  "36-54K",
			wantEnglish: "36-54K",
		},
		{
			name:        "unparseable passes through compacted",
			raw:         "Competitive salary",
			wantSalary:  "Competitivesalary",
			wantEnglish: "Competitivesalary",
		},
		{
			name:        "empty",
			raw:         "",
			wantSalary:  "",
			wantEnglish: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salary, english := ConvertSalary(tt.raw)
			if salary != tt.wantSalary {
				t.Errorf("salary: got %q, want %q", salary, tt.wantSalary)
			}
			if english != tt.wantEnglish {
				t.Errorf("salary_english: got %q, want %q", english, tt.wantEnglish)
			}
		})
	}
}

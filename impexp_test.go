package chaucha

import (
	"bytes"
	"strings"
	"testing"
)

func TestImportCSV(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []Transaction // ids are ignored
	}{
		{
			name: "english header",
			input: `date,description,amount,category,fixed
2023-10-20,Uber Eats,-12500,Alimentación,false
2023-10-15,Netflix,-8500,Entretenimiento,true
`,
			want: []Transaction{
				{Date: "2023-10-20", Description: "Uber Eats", Amount: -12500, Category: "Alimentación"},
				{Date: "2023-10-15", Description: "Netflix", Amount: -8500, Category: "Entretenimiento", IsFixed: true},
			},
		},
		{
			name: "spanish bank statement",
			input: "\ufeffFecha;Descripción;Monto;Categoría\n" +
				"20/10/2023;Jumbo;-45.000;Alimentación\n" +
				"\n" +
				"1/10/2023;Sueldo;$ 1.200.000;\n",
			want: []Transaction{
				{Date: "2023-10-20", Description: "Jumbo", Amount: -45000, Category: "Alimentación"},
				{Date: "2023-10-01", Description: "Sueldo", Amount: 1200000, Category: DefaultCategory},
			},
		},
		{
			name: "columns in any order",
			input: `amount,category,date,description,fijo
-4200,Ocio,2023-10-19,Starbucks,si
`,
			want: []Transaction{
				{Date: "2023-10-19", Description: "Starbucks", Amount: -4200, Category: "Ocio", IsFixed: true},
			},
		},
		{
			name:  "header only",
			input: "date,description,amount\n",
			want:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ImportCSV(strings.NewReader(tc.input))
			if err != nil {
				t.Fatalf("ImportCSV() unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("ImportCSV() = %d transactions, want %d: %v", len(got), len(tc.want), got)
			}
			seen := make(map[string]bool)
			for i := range got {
				if got[i].ID == "" || seen[got[i].ID] {
					t.Errorf("transaction %d has a missing or duplicated id %q", i, got[i].ID)
				}
				seen[got[i].ID] = true
				got[i].ID = ""
				if got[i] != tc.want[i] {
					t.Errorf("transaction %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestImportCSV_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "empty"},
		{"missing amount column", "date,description\n2023-10-20,Jumbo\n", `"amount"`},
		{"bad date", "date,description,amount\n2023-13-45,Jumbo,-1\n", "line 2"},
		{"bad amount", "date,description,amount\n2023-10-20,Jumbo,doce\n", "line 2"},
		{"decimal amount", "date;description;amount\n2023-10-20;Jumbo;-12,50\n", "whole number"},
		{"bad flag", "date,description,amount,fixed\n2023-10-20,Jumbo,-1,maybe\n", "fixed flag"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportCSV(strings.NewReader(tc.input))
			if err == nil {
				t.Fatal("ImportCSV() expected an error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("ImportCSV() error = %q, want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestExportTransactionsCSV_Reimport(t *testing.T) {
	txs := sampleUserData().Transactions
	var buf bytes.Buffer
	if err := ExportTransactionsCSV(&buf, txs); err != nil {
		t.Fatal(err)
	}
	back, err := ImportCSV(&buf)
	if err != nil {
		t.Fatalf("ImportCSV() of an export: %v", err)
	}
	if len(back) != len(txs) {
		t.Fatalf("got %d transactions back, want %d", len(back), len(txs))
	}
	for i := range back {
		back[i].ID = txs[i].ID
		if back[i] != txs[i] {
			t.Errorf("transaction %d = %+v, want %+v", i, back[i], txs[i])
		}
	}
}

func TestExportVariableCSV(t *testing.T) {
	var buf bytes.Buffer
	list := []VariableExpense{
		{Category: "Alimentación", Amount: 12500, Percentage: 74.8503},
		{Category: "Ocio", Amount: 4200, Percentage: 25.1497},
	}
	if err := ExportVariableCSV(&buf, list); err != nil {
		t.Fatal(err)
	}
	want := "category,amount,percentage\nAlimentación,12500,74.85\nOcio,4200,25.15\n"
	if buf.String() != want {
		t.Errorf("ExportVariableCSV() = %q, want %q", buf.String(), want)
	}
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		in      string
		want    Amount
		wantErr bool
	}{
		{"12500", 12500, false},
		{"-12.500", -12500, false},
		{"$ 45.000", 45000, false},
		{"1 200 000", 1200000, false},
		{"", 0, true},
		{"12,5", 0, true},
		{"abc", 0, true},
	}
	for _, tc := range testCases {
		got, err := ParseAmount(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

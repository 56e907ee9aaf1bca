package cliutil

import "testing"

func TestResult_ErrorSetsOKFalseAndMessage(t *testing.T) {
	res := Result{OK: false, Error: "boom"}
	if res.OK {
		t.Fatal("expected OK false")
	}
	if res.Error != "boom" {
		t.Fatalf("expected error message preserved, got %q", res.Error)
	}
}

func TestResult_SuccessCarriesData(t *testing.T) {
	res := Result{OK: true, Data: map[string]int{"n": 1}}
	if !res.OK {
		t.Fatal("expected OK true")
	}
	if res.Data == nil {
		t.Fatal("expected data to be carried through")
	}
}

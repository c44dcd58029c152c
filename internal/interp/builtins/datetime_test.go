package builtins

import (
	"regexp"
	"testing"
)

func TestBuiltinSimdiTarihSaat_Formats(t *testing.T) {
	simdi, err := builtinSimdi(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`).MatchString(simdi.String()) {
		t.Errorf("şimdi() = %q, does not match yyyy-mm-dd hh:mm:ss", simdi.String())
	}

	tarih, err := builtinTarih(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`).MatchString(tarih.String()) {
		t.Errorf("tarih() = %q, does not match yyyy-mm-dd", tarih.String())
	}

	saat, err := builtinSaat(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !regexp.MustCompile(`^\d{2}:\d{2}:\d{2}$`).MatchString(saat.String()) {
		t.Errorf("saat() = %q, does not match hh:mm:ss", saat.String())
	}
}

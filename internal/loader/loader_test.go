package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp CSV: %v", err)
	}
	return path
}

func TestLoadCompanies_Success(t *testing.T) {
	path := writeTempCSV(t, "ticker,name,headquarters\nAAPL,Apple Inc.,Cupertino\ngoog ,Alphabet Inc.,Mountain View\n")

	companies, err := LoadCompanies(path)
	if err != nil {
		t.Fatalf("LoadCompanies() returned unexpected error: %v", err)
	}

	if len(companies) != 2 {
		t.Fatalf("LoadCompanies() returned %d rows, want 2", len(companies))
	}

	if companies[0].Ticker != "AAPL" || companies[0].Name != "Apple Inc." || companies[0].Headquarters != "Cupertino" {
		t.Errorf("row 0 = %+v, want AAPL/Apple Inc./Cupertino", companies[0])
	}

	// Ticker normalization: trimmed and upper-cased
	if companies[1].Ticker != "GOOG" {
		t.Errorf("row 1 ticker = %q, want GOOG", companies[1].Ticker)
	}
}

func TestLoadCompanies_SymbolAlias(t *testing.T) {
	path := writeTempCSV(t, "symbol,company\nAAPL,Apple Inc.\n")

	companies, err := LoadCompanies(path)
	if err != nil {
		t.Fatalf("LoadCompanies() returned unexpected error: %v", err)
	}

	if len(companies) != 1 || companies[0].Ticker != "AAPL" || companies[0].Name != "Apple Inc." {
		t.Errorf("LoadCompanies() = %+v, want one AAPL row", companies)
	}
}

func TestLoadCompanies_MissingRequiredColumn(t *testing.T) {
	path := writeTempCSV(t, "name,headquarters\nApple Inc.,Cupertino\n")

	_, err := LoadCompanies(path)
	if err == nil {
		t.Fatal("LoadCompanies() expected error for missing ticker column, got nil")
	}

	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("LoadCompanies() error = %T, want *MalformedInputError", err)
	}
}

func TestLoadCompanies_HeadquartersOptional(t *testing.T) {
	path := writeTempCSV(t, "ticker,name\nAAPL,Apple Inc.\n")

	companies, err := LoadCompanies(path)
	if err != nil {
		t.Fatalf("LoadCompanies() returned unexpected error: %v", err)
	}
	if companies[0].Headquarters != "" {
		t.Errorf("Headquarters = %q, want empty", companies[0].Headquarters)
	}
}

func TestLoadCompanies_HeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "ticker,name,headquarters\n")

	companies, err := LoadCompanies(path)
	if err != nil {
		t.Fatalf("LoadCompanies() returned unexpected error: %v", err)
	}
	if len(companies) != 0 {
		t.Errorf("LoadCompanies() returned %d rows, want 0", len(companies))
	}
}

func TestLoadCompanies_EmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := LoadCompanies(path)
	if err == nil {
		t.Fatal("LoadCompanies() expected error for empty file, got nil")
	}
}

func TestLoadCompanies_FileNotFound(t *testing.T) {
	_, err := LoadCompanies(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	if err == nil {
		t.Fatal("LoadCompanies() expected error for missing file, got nil")
	}

	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("LoadCompanies() error = %T, want *MalformedInputError", err)
	}
}

func TestLoadPriceChanges_Success(t *testing.T) {
	path := writeTempCSV(t, "ticker,ytd_change\nAAPL,12.5\ntsla,-3.0\n")

	changes, err := LoadPriceChanges(path)
	if err != nil {
		t.Fatalf("LoadPriceChanges() returned unexpected error: %v", err)
	}

	if len(changes) != 2 {
		t.Fatalf("LoadPriceChanges() returned %d rows, want 2", len(changes))
	}

	if changes[0].Ticker != "AAPL" || changes[0].YTDChange != 12.5 {
		t.Errorf("row 0 = %+v, want AAPL/12.5", changes[0])
	}
	if changes[1].Ticker != "TSLA" || changes[1].YTDChange != -3.0 {
		t.Errorf("row 1 = %+v, want TSLA/-3.0", changes[1])
	}
}

func TestLoadPriceChanges_YTDAlias(t *testing.T) {
	path := writeTempCSV(t, "symbol,ytd\nAAPL,12.5\n")

	changes, err := LoadPriceChanges(path)
	if err != nil {
		t.Fatalf("LoadPriceChanges() returned unexpected error: %v", err)
	}
	if len(changes) != 1 || changes[0].YTDChange != 12.5 {
		t.Errorf("LoadPriceChanges() = %+v, want one 12.5 row", changes)
	}
}

func TestLoadPriceChanges_InvalidNumber(t *testing.T) {
	path := writeTempCSV(t, "ticker,ytd_change\nAAPL,12.5\nGOOG,not_a_number\n")

	_, err := LoadPriceChanges(path)
	if err == nil {
		t.Fatal("LoadPriceChanges() expected error for invalid number, got nil")
	}

	var malformed *MalformedInputError
	if !errors.As(err, &malformed) {
		t.Fatalf("LoadPriceChanges() error = %T, want *MalformedInputError", err)
	}
	if malformed.Line != 3 {
		t.Errorf("MalformedInputError.Line = %d, want 3", malformed.Line)
	}
}

func TestLoadPriceChanges_MissingYTDColumn(t *testing.T) {
	path := writeTempCSV(t, "ticker,price\nAAPL,178.23\n")

	_, err := LoadPriceChanges(path)
	if err == nil {
		t.Fatal("LoadPriceChanges() expected error for missing ytd_change column, got nil")
	}
}

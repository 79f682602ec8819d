package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/harrison/civicmap/internal/bank"
	"github.com/harrison/civicmap/internal/models"
)

func TestValidateDefaultTables(t *testing.T) {
	stdout, _, err := execute(t, "", "validate")
	if err != nil {
		t.Fatalf("validate returned error: %v", err)
	}

	for _, want := range []string{
		"✓ Parsed 40 questions successfully",
		"✓ Parsed 15 archetypes successfully",
		"1 table diagnostic(s)",
		"Traditionalist Isolationist",
		"Tables are valid.",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestValidateStrict(t *testing.T) {
	_, _, err := execute(t, "", "validate", "--strict")
	if err == nil {
		t.Fatal("Expected strict validation to fail on diagnostics")
	}
	if !strings.Contains(err.Error(), "strict mode") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestValidateTablesInvalid(t *testing.T) {
	questions := bank.Default().Questions()
	questions[1].ID = questions[0].ID

	var buf bytes.Buffer
	err := validateTables(questions, bank.Default().Archetypes(), false, &buf)
	if err == nil {
		t.Fatal("Expected error for duplicate question id")
	}

	output := buf.String()
	if !strings.Contains(output, "✗ Validation failed") {
		t.Errorf("Expected failure marker, got:\n%s", output)
	}
	if !strings.Contains(output, "Question bank or archetype table is invalid") {
		t.Errorf("Expected invalid tables warning, got:\n%s", output)
	}
}

func TestValidateTablesClean(t *testing.T) {
	b := bank.Default()
	var archetypes []models.Archetype
	for _, a := range b.Archetypes() {
		if a.Name != "Traditionalist Isolationist" {
			archetypes = append(archetypes, a)
		}
	}

	var buf bytes.Buffer
	if err := validateTables(b.Questions(), archetypes, true, &buf); err != nil {
		t.Fatalf("Expected clean tables to pass strict mode: %v\n%s", err, buf.String())
	}
	if !strings.Contains(buf.String(), "✓ Every archetype is reachable") {
		t.Errorf("Expected reachable marker, got:\n%s", buf.String())
	}
}

func TestValidateSheets(t *testing.T) {
	dir := t.TempDir()
	complete := writeSheet(t, dir, "complete.yaml", 1, nil)
	partial := writeSheet(t, dir, "partial.yaml", 1, map[int]int{12: -1})

	stdout, _, err := execute(t, "", "validate", complete)
	if err != nil {
		t.Fatalf("Expected complete sheet to validate: %v", err)
	}
	if !strings.Contains(stdout, "✓ "+complete+": 40 answers, complete") {
		t.Errorf("Unexpected output:\n%s", stdout)
	}

	stdout, _, err = execute(t, "", "validate", complete, partial)
	if err == nil {
		t.Fatal("Expected partial sheet to fail validation")
	}
	if !strings.Contains(err.Error(), "1 of 2 answer sheet(s) invalid") {
		t.Errorf("Unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "✗ "+partial) {
		t.Errorf("Expected failure marker for partial sheet, got:\n%s", stdout)
	}
}

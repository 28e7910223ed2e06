package rebuilder

import (
	"testing"
)

func TestQuantityLiterals(t *testing.T) {
	cases := []struct {
		name string
		b    *Builder
		want string
	}{
		{"exactly", New().Exactly(3).Of("a"), "(?:(?:a){3,3})"},
		{"min only", New().Min(2).Of("a"), "(?:(?:a){2,})"},
		{"max only", New().Max(5).Of("a"), "(?:(?:a){0,5})"},
		{"min and max", New().Min(2).Max(5).Of("a"), "(?:(?:a){2,5})"},
	}

	for _, tc := range cases {
		if got := tc.b.Literal(); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestQuantityDegenerateFallback(t *testing.T) {
	// No bound ever set: the upper-bound branch renders the -1 sentinel.
	if got := New().Of("a").Literal(); got != "(?:(?:a){0,-1})" {
		t.Fatalf("degenerate quantity: got %q", got)
	}
}

func TestCharacterSourcePrecedence(t *testing.T) {
	// Literal text beats any-character.
	if got := New().Exactly(1).OfAny().Of("a").Literal(); got != "(?:(?:a){1,1})" {
		t.Fatalf("of vs ofAny: got %q", got)
	}

	// Any-character beats a group backreference.
	if got := New().Exactly(1).OfGroup(2).OfAny().Literal(); got != "(?:(?:.){1,1})" {
		t.Fatalf("ofAny vs ofGroup: got %q", got)
	}

	// Inclusive set beats exclusive set.
	if got := New().Exactly(1).NotFrom("cd").From("ab").Literal(); got != "(?:(?:[ab]){1,1})" {
		t.Fatalf("from vs notFrom: got %q", got)
	}
}

func TestReluctantSuffix(t *testing.T) {
	if got := New().Min(0).OfAny().Reluctantly().Literal(); got != "(?:(?:.){0,}?)" {
		t.Fatalf("reluctant: got %q", got)
	}
}

func TestCaptureGroups(t *testing.T) {
	if got := New().Exactly(1).Of("a").AsGroup().Literal(); got != "((?:a){1,1})" {
		t.Fatalf("plain group: got %q", got)
	}

	if got := New().Exactly(1).Of("a").AsGroup("word").Literal(); got != "(?P<word>(?:a){1,1})" {
		t.Fatalf("named group: got %q", got)
	}
}

func TestGroupRenumberingOnEmbed(t *testing.T) {
	sub := New()
	sub.Exactly(1).Of("a").AsGroup()
	sub.Exactly(1).OfGroup(1)

	parent := New()
	parent.Exactly(1).Of("x").AsGroup()
	parent.Exactly(1).Like(sub)

	want := `((?:x){1,1})(?:(?:((?:a){1,1})(?:(?:\2){1,1})){1,1})`
	if got := parent.Literal(); got != want {
		t.Fatalf("renumbered literal: got %q want %q", got, want)
	}

	if parent.groupsUsed != 2 {
		t.Fatalf("parent group count: got %d want 2", parent.groupsUsed)
	}

	re := parent.MustCompile()
	if !re.MatchString("xaa") {
		t.Fatalf("expected match for %q", "xaa")
	}
	if re.MatchString("xab") {
		t.Fatalf("unexpected match for %q", "xab")
	}
}

func TestBackreferenceCompiles(t *testing.T) {
	re := New().Exactly(1).Of("a").AsGroup().Exactly(1).OfGroup(1).MustCompile()

	if !re.MatchString("aa") {
		t.Fatalf("backreference: expected match for %q", "aa")
	}
	if re.MatchString("ab") {
		t.Fatalf("backreference: unexpected match for %q", "ab")
	}
}

func TestSanitizeMetacharacters(t *testing.T) {
	raw := `.*+?^${}()|[]\`

	want := `(?:(?:\.\*\+\?\^\$\{\}\(\)\|\[\]\\){1,1})`
	b := New().Then(raw)
	if got := b.Literal(); got != want {
		t.Fatalf("sanitized literal: got %q want %q", got, want)
	}

	if !b.MustCompile().MatchString(raw) {
		t.Fatalf("expected verbatim match for %q", raw)
	}
}

func TestEndToEnd(t *testing.T) {
	b := New().
		StartOfInput().
		Exactly(3).Digits().
		Then("-").
		Min(2).Max(5).Letters().
		EndOfInput()

	want := `(?:^)(?:(?:(?:\d)){3,3})(?:(?:-){1,1})(?:(?:[A-Za-z]){2,5})(?:$)`
	if got := b.Literal(); got != want {
		t.Fatalf("literal: got %q want %q", got, want)
	}

	re := b.MustCompile()
	if !re.MatchString("123-abcde") {
		t.Fatalf("expected match for %q", "123-abcde")
	}
	for _, s := range []string{"12-abcde", "123-ab1de"} {
		if re.MatchString(s) {
			t.Fatalf("unexpected match for %q", s)
		}
	}
}

func TestFlagDeduplication(t *testing.T) {
	if got := New().IgnoreCase().IgnoreCase().Flags(); got != "i" {
		t.Fatalf("duplicate flag: got %q", got)
	}

	if got := New().GlobalMatch().IgnoreCase().GlobalMatch().Flags(); got != "gi" {
		t.Fatalf("flag order: got %q", got)
	}
}

func TestIgnoreCaseMatch(t *testing.T) {
	re := New().IgnoreCase().Then("abc").MustCompile()
	if !re.MatchString("ABC") {
		t.Fatalf("ignore case: expected match for %q", "ABC")
	}
	if re.Flags() != "i" {
		t.Fatalf("flags: got %q", re.Flags())
	}
}

func TestLiteralIdempotent(t *testing.T) {
	b := New().Then("a")
	first := b.Literal()
	if second := b.Literal(); second != first {
		t.Fatalf("repeated Literal: got %q then %q", first, second)
	}
}

func TestNamedGroupSubmatch(t *testing.T) {
	b := New()
	b.Min(1).Digits().AsGroup("num")
	b.Then("-")

	re := b.MustCompile()
	names := re.SubexpNames()
	if len(names) < 2 || names[1] != "num" {
		t.Fatalf("SubexpNames: got %v", names)
	}

	sm := re.FindStringSubmatch("42-")
	if len(sm) != 2 || sm[0] != "42-" || sm[1] != "42" {
		t.Fatalf("FindStringSubmatch: got %v", sm)
	}
}

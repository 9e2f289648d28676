package textutil

import "testing"

func TestCollapseCJKSpacesDropsInterCharacterSpaces(t *testing.T) {
	if got := CollapseCJKSpaces("你 好"); got != "你好" {
		t.Fatalf("expected CJK space to collapse, got %q", got)
	}
	if got := CollapseCJKSpaces("こん にちは"); got != "こんにちは" {
		t.Fatalf("expected kana space to collapse, got %q", got)
	}
	if got := CollapseCJKSpaces("안녕 하세요"); got != "안녕하세요" {
		t.Fatalf("expected hangul space to collapse, got %q", got)
	}
}

func TestCollapseCJKSpacesLeavesLatinTextAlone(t *testing.T) {
	if got := CollapseCJKSpaces("hello world"); got != "hello world" {
		t.Fatalf("expected latin text unchanged, got %q", got)
	}
}

func TestCollapseCJKSpacesRequiresCJKOnBothSides(t *testing.T) {
	if got := CollapseCJKSpaces("你 hello"); got != "你 hello" {
		t.Fatalf("expected mixed boundary to keep its space, got %q", got)
	}
	if got := CollapseCJKSpaces("hello 好"); got != "hello 好" {
		t.Fatalf("expected mixed boundary to keep its space, got %q", got)
	}
}

func TestCollapseCJKSpacesKeepsEdgeSpaces(t *testing.T) {
	if got := CollapseCJKSpaces(" 你好 "); got != " 你好 " {
		t.Fatalf("expected leading/trailing spaces untouched, got %q", got)
	}
}

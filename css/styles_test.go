package css

import "testing"

func ptr[T any](v T) *T {
	return &v
}

func TestMergeEmptyWithEmpty(t *testing.T) {
	merged := (Styles{}).Merge(Styles{})
	if !merged.IsZero() {
		t.Errorf("merge of empties = %+v, want zero", merged)
	}
}

func TestMergeKeepsBaseWhenOtherEmpty(t *testing.T) {
	base := Styles{
		Color:   ptr("red"),
		Display: ptr(DisplayBlock),
	}
	merged := base.Merge(Styles{})
	if merged.Color == nil || *merged.Color != "red" {
		t.Errorf("Color = %v, want red", merged.Color)
	}
	if merged.Display == nil || *merged.Display != DisplayBlock {
		t.Errorf("Display = %v, want block", merged.Display)
	}
}

func TestMergeOtherOverridesBase(t *testing.T) {
	base := Styles{
		Color:      ptr("red"),
		Background: ptr("white"),
	}
	other := Styles{Color: ptr("blue")}
	merged := base.Merge(other)
	if *merged.Color != "blue" {
		t.Errorf("Color = %q, want blue", *merged.Color)
	}
	if *merged.Background != "white" {
		t.Errorf("Background = %q, want white", *merged.Background)
	}
}

func TestMergeNotCommutative(t *testing.T) {
	a := Styles{Color: ptr("red")}
	b := Styles{Color: ptr("blue")}
	ab := a.Merge(b)
	ba := b.Merge(a)
	if *ab.Color != "blue" || *ba.Color != "red" {
		t.Errorf("a.Merge(b).Color = %q, b.Merge(a).Color = %q; the right side must win",
			*ab.Color, *ba.Color)
	}
}

func TestMergePartialOverride(t *testing.T) {
	base := Styles{
		Display: ptr(DisplayBlock),
		Width:   ptr(Percent(50)),
		Color:   ptr("red"),
	}
	other := Styles{
		Width:  ptr(Cells(10)),
		Height: ptr(Auto()),
	}
	merged := base.Merge(other)
	if *merged.Display != DisplayBlock {
		t.Error("Display lost in merge")
	}
	if *merged.Width != Cells(10) {
		t.Errorf("Width = %v, want 10 cells", *merged.Width)
	}
	if !merged.Height.IsAuto() {
		t.Errorf("Height = %v, want auto", *merged.Height)
	}
	if *merged.Color != "red" {
		t.Errorf("Color = %q, want red", *merged.Color)
	}
}

func TestMergeTextStyleReplacesWholesale(t *testing.T) {
	base := Styles{TextStyle: &TextStyleFlags{Italic: ptr(true)}}
	other := Styles{TextStyle: &TextStyleFlags{Bold: ptr(true)}}
	merged := base.Merge(other)
	if merged.TextStyle.Italic != nil {
		t.Error("Italic survived a wholesale TextStyle replacement")
	}
	if merged.TextStyle.Bold == nil || !*merged.TextStyle.Bold {
		t.Error("Bold not set after merge")
	}
}

func TestMergeChain(t *testing.T) {
	// The cascade folds lowest specificity first; each later merge wins.
	low := Styles{Color: ptr("gray"), Display: ptr(DisplayBlock)}
	mid := Styles{Color: ptr("blue")}
	high := Styles{Color: ptr("red"), Border: &Border{Kind: BorderThin}}

	merged := (Styles{}).Merge(low).Merge(mid).Merge(high)
	if *merged.Color != "red" {
		t.Errorf("Color = %q, want red", *merged.Color)
	}
	if *merged.Display != DisplayBlock {
		t.Error("Display lost along the chain")
	}
	if merged.Border.Kind != BorderThin {
		t.Errorf("Border = %+v, want thin", merged.Border)
	}
}

func TestStylesIsZero(t *testing.T) {
	if !(Styles{}).IsZero() {
		t.Error("zero Styles reported non-zero")
	}
	if (Styles{Dock: ptr(DockLeft)}).IsZero() {
		t.Error("non-zero Styles reported zero")
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{DisplayNone.String(), "none"},
		{VisibilityHidden.String(), "hidden"},
		{LayoutGrid.String(), "grid"},
		{DockBottom.String(), "bottom"},
		{OverflowScroll.String(), "scroll"},
		{AlignCenter.String(), "center"},
		{BorderDouble.String(), "double"},
		{Border{Kind: BorderThin, Color: "red"}.String(), "thin red"},
		{Border{Kind: BorderAscii}.String(), "ascii"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

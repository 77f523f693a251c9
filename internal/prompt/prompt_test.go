package prompt

import (
	"math/rand"
	"testing"
	"unicode/utf8"
)

func TestInsertCharacter(t *testing.T) {
	var p Prompt
	p.InsertString("hllo")
	p.Cursor = 1
	p.InsertCharacter('e')
	if p.Text != "hello" || p.Cursor != 2 {
		t.Fatalf("expected hello with cursor 2, got %q cursor %d", p.Text, p.Cursor)
	}
	p.Cursor = len(p.Text)
	p.InsertCharacter('é')
	if p.Text != "helloé" || p.Cursor != len("helloé") {
		t.Fatalf("expected multibyte insert to advance by its length, got %q cursor %d", p.Text, p.Cursor)
	}
}

func TestDeleteCharacter(t *testing.T) {
	var p Prompt
	if !p.DeleteCharacter() {
		t.Fatalf("expected empty prompt to escalate")
	}
	p = Prompt{Text: "abc", Cursor: 0}
	if !p.DeleteCharacter() || p.Text != "abc" {
		t.Fatalf("expected cursor 0 to escalate without change, got %q", p.Text)
	}
	p.Cursor = 2
	if p.DeleteCharacter() {
		t.Fatalf("expected regular delete not to escalate")
	}
	if p.Text != "ac" || p.Cursor != 1 {
		t.Fatalf("expected ac with cursor 1, got %q cursor %d", p.Text, p.Cursor)
	}
	p = Prompt{Text: "añ", Cursor: len("añ")}
	p.DeleteCharacter()
	if p.Text != "a" || p.Cursor != 1 {
		t.Fatalf("expected whole rune removed, got %q cursor %d", p.Text, p.Cursor)
	}
}

func TestDeleteForward(t *testing.T) {
	p := Prompt{Text: "abc", Cursor: 1}
	if p.DeleteForward() || p.Text != "ac" || p.Cursor != 1 {
		t.Fatalf("unexpected forward delete result %q cursor %d", p.Text, p.Cursor)
	}
	p.Cursor = 2
	if !p.DeleteForward() {
		t.Fatalf("expected forward delete at end to escalate")
	}
}

func TestDeleteSelection(t *testing.T) {
	p := Prompt{Text: "hello world", Cursor: 6}
	p.StartSelection()
	p.Cursor = 11
	if p.DeleteSelection() {
		t.Fatalf("expected span not starting at 0 to report false")
	}
	if p.Text != "hello" {
		t.Fatalf("expected hello, got %q", p.Text)
	}
	if _, ok := p.Selection(); ok {
		t.Fatalf("expected selection to be cleared")
	}
	if p.Cursor != 5 {
		t.Fatalf("expected cursor 5, got %d", p.Cursor)
	}
}

func TestDeleteSelectionFromStart(t *testing.T) {
	p := Prompt{Text: "hello world", Cursor: 0}
	p.StartSelection()
	p.Cursor = 4
	if !p.DeleteSelection() {
		t.Fatalf("expected span at text start to report true")
	}
	if p.Text != " world" || p.Cursor != 0 {
		t.Fatalf("expected \" world\" with cursor 0, got %q cursor %d", p.Text, p.Cursor)
	}
}

func TestDeleteSelectionWithoutSelectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	p := Prompt{Text: "abc", Cursor: 1}
	p.DeleteSelection()
}

func TestBackspaceUsesSelection(t *testing.T) {
	p := Prompt{Text: "abcdef", Cursor: 2}
	p.StartSelection()
	p.Cursor = 3
	p.Backspace()
	if p.Text != "aef" || p.Cursor != 1 {
		t.Fatalf("expected aef with cursor 1, got %q cursor %d", p.Text, p.Cursor)
	}
	p.Cursor = 2
	p.Backspace()
	if p.Text != "af" {
		t.Fatalf("expected af, got %q", p.Text)
	}
}

func TestStaleAnchorStaysOnRuneBoundary(t *testing.T) {
	var p Prompt
	p.InsertString(" a日")
	p.StartSelection()
	p.MoveCursor(1, Left)
	p.InsertCharacter(' ')
	if anchor, _ := p.Selection(); anchor != len(" a ") {
		t.Fatalf("expected anchor snapped to the start of 日, got %d", anchor)
	}
	p.MoveCursor(1, Left)
	p.InsertCharacter('/')
	p.MoveCursor(1, Right)
	p.Backspace()
	if !utf8.ValidString(p.Text) {
		t.Fatalf("expected valid text, got %q", p.Text)
	}
	if p.Text != " a日" || p.Cursor != 2 {
		t.Fatalf("expected \" a日\" with cursor 2, got %q cursor %d", p.Text, p.Cursor)
	}
}

func TestInSelection(t *testing.T) {
	p := Prompt{Text: "hello world", Cursor: 6}
	if p.InSelection(6) {
		t.Fatalf("no selection should cover nothing")
	}
	p.StartSelection()
	p.Cursor = 11
	for pos := 0; pos < len(p.Text); pos++ {
		want := pos >= 5
		if got := p.InSelection(pos); got != want {
			t.Fatalf("InSelection(%d): expected %v, got %v", pos, want, got)
		}
	}
}

func TestFindSkippable(t *testing.T) {
	p := Prompt{Text: "cd ./src/app", Cursor: 12}
	want := []int{9, 5, 4, 3, 0}
	for _, w := range want {
		got := p.FindSkippable(Left)
		if got != w {
			t.Fatalf("expected %d, got %d", w, got)
		}
		p.Cursor = got
	}
	p.Cursor = 0
	if got := p.FindSkippable(Right); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	p.Cursor = 9
	if got := p.FindSkippable(Right); got != 12 {
		t.Fatalf("expected end of text, got %d", got)
	}
	if got := (&Prompt{}).FindSkippable(Right); got != 0 {
		t.Fatalf("expected 0 on empty text, got %d", got)
	}
}

func TestCtrlBackspace(t *testing.T) {
	p := Prompt{Text: "git commit", Cursor: 10}
	if p.CtrlBackspace() {
		t.Fatalf("expected word delete not to escalate")
	}
	if p.Text != "git " || p.Cursor != 4 {
		t.Fatalf("expected \"git \", got %q cursor %d", p.Text, p.Cursor)
	}
	p.CtrlBackspace()
	if p.Text != "" || p.Cursor != 0 {
		t.Fatalf("expected empty prompt, got %q", p.Text)
	}
	if !p.CtrlBackspace() {
		t.Fatalf("expected escalation on empty prompt")
	}
}

func TestHorizontalArrow(t *testing.T) {
	p := Prompt{Text: "ab", Cursor: 0}
	if !p.HorizontalArrow(Left, false, false) {
		t.Fatalf("expected failed move at start")
	}
	if p.HorizontalArrow(Right, true, false) {
		t.Fatalf("expected move to succeed")
	}
	if start, ok := p.Selection(); !ok || start != 0 {
		t.Fatalf("expected selection anchored at 0, got %d %v", start, ok)
	}
	if p.HorizontalArrow(Right, true, true) || p.Cursor != 2 {
		t.Fatalf("expected ctrl jump to end, cursor %d", p.Cursor)
	}
	if start, _ := p.Selection(); start != 0 {
		t.Fatalf("existing anchor should be kept, got %d", start)
	}
	if !p.HorizontalArrow(Right, false, false) {
		t.Fatalf("expected failed move at end")
	}
}

func TestMoveCursorRuneAware(t *testing.T) {
	p := Prompt{Text: "aé b", Cursor: 0}
	p.MoveCursor(2, Right)
	if p.Cursor != len("aé") {
		t.Fatalf("expected cursor after é, got %d", p.Cursor)
	}
	p.MoveCursor(10, Right)
	if p.Cursor != len(p.Text) {
		t.Fatalf("expected cursor clamped at end, got %d", p.Cursor)
	}
	p.MoveCursor(10, Left)
	if p.Cursor != 0 {
		t.Fatalf("expected cursor clamped at 0, got %d", p.Cursor)
	}
}

func TestMoveToStartAndEnd(t *testing.T) {
	p := Prompt{Text: "abc", Cursor: 1}
	if p.MoveToEnd() || p.Cursor != 3 {
		t.Fatalf("expected move to end")
	}
	if !p.MoveToEnd() {
		t.Fatalf("expected second move to end to report edge")
	}
	if p.MoveToStart() || !p.MoveToStart() {
		t.Fatalf("unexpected move to start results")
	}
}

func TestClear(t *testing.T) {
	p := Prompt{Text: "ls", Cursor: 2}
	p.StartSelection()
	if got := p.Clear(); got != "ls" {
		t.Fatalf("expected ls, got %q", got)
	}
	if p.Text != "" || p.Cursor != 0 {
		t.Fatalf("expected empty prompt")
	}
	if _, ok := p.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestCursorStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []rune("ab é/")
	var p Prompt
	for i := 0; i < 2000; i++ {
		if rng.Intn(3) == 0 {
			p.Backspace()
		} else {
			p.InsertCharacter(alphabet[rng.Intn(len(alphabet))])
		}
		if rng.Intn(5) == 0 {
			p.MoveCursor(rng.Intn(3), Direction(rng.Intn(2)))
		}
		if p.Cursor < 0 || p.Cursor > len(p.Text) {
			t.Fatalf("step %d: cursor %d out of range for %q", i, p.Cursor, p.Text)
		}
	}
}

func TestSharedTryView(t *testing.T) {
	s := NewShared()
	s.Edit(func(p *Prompt) { p.InsertString("x") })

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		s.Edit(func(*Prompt) {
			close(locked)
			<-release
		})
		close(done)
	}()
	<-locked
	if s.TryView(func(*Prompt) {}) {
		t.Fatalf("expected TryView to skip while locked")
	}
	close(release)
	<-done

	var text string
	if !s.TryView(func(p *Prompt) { text = p.Text }) {
		t.Fatalf("expected TryView to run once unlocked")
	}
	if text != "x" {
		t.Fatalf("expected x, got %q", text)
	}
}

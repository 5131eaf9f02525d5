package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeLine(s *Store, line string) {
	for _, r := range line {
		s.Insert(r)
	}
}

func TestInsert_AtCursor(t *testing.T) {
	s := NewStore()
	typeLine(s, "hllo")

	s.MoveLeft()
	s.MoveLeft()
	s.MoveLeft()
	s.Insert('e')

	assert.Equal(t, "hello", s.Line())
	assert.Equal(t, 2, s.Cursor())
}

func TestBackspace_BeforeCursorOnly(t *testing.T) {
	s := NewStore()
	typeLine(s, "abc")

	s.Backspace()
	assert.Equal(t, "ab", s.Line())

	s.MoveLeft()
	s.MoveLeft()
	s.Backspace() // cursor at 0, nothing to delete
	assert.Equal(t, "ab", s.Line())
}

func TestCursor_ClampedToLine(t *testing.T) {
	s := NewStore()
	typeLine(s, "hi")

	s.MoveRight()
	assert.Equal(t, 2, s.Cursor())

	s.MoveLeft()
	s.MoveLeft()
	s.MoveLeft()
	assert.Equal(t, 0, s.Cursor())
}

func TestCommit_SkipsBlankLines(t *testing.T) {
	s := NewStore()

	typeLine(s, "   \t  ")
	s.Commit()

	assert.Equal(t, 0, s.HistoryLen())
}

func TestCommit_SkipsConsecutiveDuplicates(t *testing.T) {
	s := NewStore()

	typeLine(s, "::status")
	s.Commit()
	s.Reset()

	typeLine(s, "::status")
	s.Commit()
	s.Reset()

	assert.Equal(t, 1, s.HistoryLen(), "verbatim duplicate of the newest entry must not be stored")

	typeLine(s, "::clear")
	s.Commit()
	s.Reset()

	typeLine(s, "::status")
	s.Commit()
	s.Reset()

	// Non-consecutive repeats are kept.
	assert.Equal(t, []string{"::status", "::clear", "::status"}, s.History())
}

func TestHistoryNavigation_ClampedNoWraparound(t *testing.T) {
	s := NewStore()
	for _, line := range []string{"first", "second", "third"} {
		typeLine(s, line)
		s.Commit()
		s.Reset()
	}

	s.HistoryUp()
	assert.Equal(t, "third", s.Line())
	s.HistoryUp()
	s.HistoryUp()
	assert.Equal(t, "first", s.Line())

	// Clamped at the oldest entry.
	s.HistoryUp()
	assert.Equal(t, "first", s.Line())

	s.HistoryDown()
	assert.Equal(t, "second", s.Line())
	s.HistoryDown()
	s.HistoryDown()

	// One past the newest entry is the empty live line, and it clamps there.
	assert.Equal(t, "", s.Line())
	s.HistoryDown()
	assert.Equal(t, "", s.Line())
}

func TestHistoryNavigation_CursorFollowsLoadedLine(t *testing.T) {
	s := NewStore()
	typeLine(s, "navigate me")
	s.Commit()
	s.Reset()

	s.HistoryUp()

	assert.Equal(t, len("navigate me"), s.Cursor())
}

func TestRecordCommand_Increments(t *testing.T) {
	s := NewStore()

	assert.Equal(t, 1, s.RecordCommand())
	assert.Equal(t, 2, s.RecordCommand())
	assert.Equal(t, 3, s.RecordCommand())
}

func TestPurgeHistory_ZeroizesBackingMemory(t *testing.T) {
	s := NewStore()
	for _, line := range []string{"secret one", "secret two"} {
		typeLine(s, line)
		s.Commit()
		s.Reset()
	}

	// Keep references to the backing arrays before the purge.
	backing := make([][]rune, len(s.history))
	copy(backing, s.history)

	count := s.PurgeHistory()

	require.Equal(t, 2, count)
	assert.Equal(t, 0, s.HistoryLen())
	for i, entry := range backing {
		for j, r := range entry {
			assert.Zerof(t, r, "history[%d][%d] retains original content", i, j)
		}
	}
}

func TestClose_ZeroizesLiveTextAndHistory(t *testing.T) {
	s := NewStore()
	typeLine(s, "committed secret")
	s.Commit()
	s.Reset()
	typeLine(s, "live secret")

	liveBacking := s.content
	historyBacking := s.history[0]

	s.Close()

	for i, r := range liveBacking[:cap(liveBacking)] {
		assert.Zerof(t, r, "live text rune %d retains original content", i)
	}
	for i, r := range historyBacking {
		assert.Zerof(t, r, "history rune %d retains original content", i)
	}
	assert.Equal(t, "", s.Line())
	assert.Equal(t, 0, s.HistoryLen())
}

func TestReset_ErasesLiveTextKeepsHistory(t *testing.T) {
	s := NewStore()
	typeLine(s, "keep me")
	s.Commit()
	s.Reset()
	typeLine(s, "discard me")

	liveBacking := s.content

	s.Reset()

	assert.Equal(t, "", s.Line())
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, 1, s.HistoryLen())
	for _, r := range liveBacking[:cap(liveBacking)] {
		assert.Zero(t, r)
	}
}

func TestHistoryNavigation_ReplacedLineIsErased(t *testing.T) {
	s := NewStore()
	typeLine(s, "old entry")
	s.Commit()
	s.Reset()

	typeLine(s, "half-typed secret")
	liveBacking := s.content

	s.HistoryUp()

	// The prefix now holds the loaded entry; nothing of the replaced text
	// may survive beyond it.
	assert.Equal(t, "old entry", s.Line())
	for _, r := range liveBacking[len("old entry"):cap(liveBacking)] {
		assert.Zero(t, r, "tail of replaced live text must be erased")
	}
}

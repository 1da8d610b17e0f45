package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dscirocco/cvarchitect/internal/types"
)

func testRecord() *types.ResumeRecord {
	return &types.ResumeRecord{
		PersonalInfo: types.PersonalInfo{FullName: "Diego Rossi"},
		WorkExperience: []types.WorkExperience{
			{ID: "exp-1", Title: "Engineer", Description: []string{"Did things"}, Visible: true},
		},
		Skills: []types.LabeledToggle{
			{Name: "Go", Visible: true},
			{Name: "SQL", Visible: true},
		},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(time.Hour)
	t.Cleanup(store.Close)
	return store
}

func TestStoreCreateAndGet(t *testing.T) {
	store := newTestStore(t)

	sess := store.Create(testRecord())
	require.NotEmpty(t, sess.ID)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess, got)
}

func TestStoreGetUnknownSession(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("nope")
	var notFound *ErrSessionNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.ID)
}

func TestSessionRecordReturnsIsolatedCopy(t *testing.T) {
	store := newTestStore(t)
	sess := store.Create(testRecord())

	copy1 := sess.Record()
	copy1.PersonalInfo.FullName = "Someone Else"
	copy1.Skills[0].Name = "Rust"
	copy1.WorkExperience[0].Description[0] = "mutated"

	copy2 := sess.Record()
	assert.Equal(t, "Diego Rossi", copy2.PersonalInfo.FullName)
	assert.Equal(t, "Go", copy2.Skills[0].Name)
	assert.Equal(t, "Did things", copy2.WorkExperience[0].Description[0])
}

func TestSessionReplace(t *testing.T) {
	store := newTestStore(t)
	sess := store.Create(testRecord())

	replacement := testRecord()
	replacement.PersonalInfo.FullName = "New Name"
	sess.Replace(replacement)

	assert.Equal(t, "New Name", sess.Record().PersonalInfo.FullName)
}

func TestRegenerationLastWriteWins(t *testing.T) {
	store := newTestStore(t)
	sess := store.Create(testRecord())

	// Two regenerations start; the older one finishes last.
	seqOld := sess.BeginRegeneration()
	seqNew := sess.BeginRegeneration()

	newRecord := testRecord()
	newRecord.PersonalInfo.FullName = "Newer Result"
	require.True(t, sess.CommitRegeneration(newRecord, seqNew))

	staleRecord := testRecord()
	staleRecord.PersonalInfo.FullName = "Stale Result"
	assert.False(t, sess.CommitRegeneration(staleRecord, seqOld))

	assert.Equal(t, "Newer Result", sess.Record().PersonalInfo.FullName)
}

func TestSessionProfileImage(t *testing.T) {
	store := newTestStore(t)
	sess := store.Create(testRecord())

	assert.Empty(t, sess.ProfileImage())
	sess.SetProfileImage("data:image/png;base64,AAAA")
	assert.Equal(t, "data:image/png;base64,AAAA", sess.ProfileImage())
}

func TestStoreSweepDropsIdleSessions(t *testing.T) {
	store := NewStore(40 * time.Millisecond)
	t.Cleanup(store.Close)

	sess := store.Create(testRecord())

	// Get refreshes lastAccess, so wait out the TTL in one stretch before
	// checking.
	time.Sleep(250 * time.Millisecond)

	_, err := store.Get(sess.ID)
	var notFound *ErrSessionNotFound
	assert.ErrorAs(t, err, &notFound)
}

package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
}

func (s *StorageSuite) TestNewStorageIsEmpty() {
	s.Equal(0, s.storage.Len())
	s.Empty(s.storage.Snapshot())
}

func (s *StorageSuite) TestRegisterAndVerify() {
	s.storage.Register("alice", "secret")

	s.True(s.storage.Verify("alice", "secret"))
	s.Equal(1, s.storage.Len())
}

func (s *StorageSuite) TestVerifyUnknownUser() {
	s.False(s.storage.Verify("nobody", "secret"))
}

func (s *StorageSuite) TestVerifyWrongPassword() {
	s.storage.Register("alice", "secret")

	s.False(s.storage.Verify("alice", "wrong"))
	s.False(s.storage.Verify("alice", ""))
}

func (s *StorageSuite) TestVerifyIsCaseSensitive() {
	s.storage.Register("alice", "Secret")

	s.False(s.storage.Verify("Alice", "Secret"))
	s.False(s.storage.Verify("alice", "secret"))
	s.True(s.storage.Verify("alice", "Secret"))
}

func (s *StorageSuite) TestRegisterOverwritesPassword() {
	s.storage.Register("alice", "first")
	s.storage.Register("alice", "second")

	s.False(s.storage.Verify("alice", "first"))
	s.True(s.storage.Verify("alice", "second"))
	s.Equal(1, s.storage.Len())
}

func (s *StorageSuite) TestVerifyDoesNotMutate() {
	s.storage.Register("alice", "secret")
	before := s.storage.Snapshot()

	s.storage.Verify("alice", "wrong")
	s.storage.Verify("bob", "x")
	s.storage.Verify("", "")

	s.Equal(before, s.storage.Snapshot())
}

func (s *StorageSuite) TestSnapshotIsACopy() {
	s.storage.Register("alice", "secret")

	snap := s.storage.Snapshot()
	snap["alice"] = "changed"
	snap["mallory"] = "x"

	s.True(s.storage.Verify("alice", "secret"))
	s.False(s.storage.Verify("mallory", "x"))
}

func (s *StorageSuite) TestConcurrentRegisterAndVerify() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.storage.Register("alice", "secret")
		}()
		go func() {
			defer wg.Done()
			s.storage.Verify("alice", "secret")
		}()
	}
	wg.Wait()

	s.True(s.storage.Verify("alice", "secret"))
	s.Equal(1, s.storage.Len())
}

package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"whisper-vault/internal/app/model"
	"whisper-vault/internal/app/repository"
)

var _ repository.TranscriptionDAO = (*MockTranscriptionDAO)(nil)

// MockTranscriptionDAO is an in-memory repository.TranscriptionDAO that
// records every call and can be told to fail per method.
type MockTranscriptionDAO struct {
	mu sync.Mutex

	audioFiles     map[int64]*model.AudioFile
	transcriptions map[int64]*model.TranscriptionRecord
	nextID         int64

	// ErrorMap maps a method name to the error it should return.
	ErrorMap    map[string]error
	CallHistory []DAOCall
}

// DAOCall represents a single DAO method call for tracking
type DAOCall struct {
	Method    string
	Arguments []interface{}
	Error     error
	Timestamp time.Time
}

// NewMockTranscriptionDAO creates an empty MockTranscriptionDAO.
func NewMockTranscriptionDAO() *MockTranscriptionDAO {
	return &MockTranscriptionDAO{
		audioFiles:     make(map[int64]*model.AudioFile),
		transcriptions: make(map[int64]*model.TranscriptionRecord),
		nextID:         1,
		ErrorMap:       make(map[string]error),
	}
}

func (m *MockTranscriptionDAO) track(method string, err error, args ...interface{}) error {
	m.CallHistory = append(m.CallHistory, DAOCall{
		Method:    method,
		Arguments: args,
		Error:     err,
		Timestamp: time.Now(),
	})
	return err
}

func (m *MockTranscriptionDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.track("Close", m.ErrorMap["Close"])
}

func (m *MockTranscriptionDAO) CreateAudioFile(ctx context.Context, userID, fileURL string) (*model.AudioFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.track("CreateAudioFile", m.ErrorMap["CreateAudioFile"], userID, fileURL); err != nil {
		return nil, err
	}

	audioFile := &model.AudioFile{ID: m.nextID, UserID: userID, FileURL: fileURL, CreatedAt: time.Now().UTC()}
	m.audioFiles[audioFile.ID] = audioFile
	m.nextID++

	copied := *audioFile
	return &copied, nil
}

func (m *MockTranscriptionDAO) DeleteAudioFile(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.track("DeleteAudioFile", m.ErrorMap["DeleteAudioFile"], id); err != nil {
		return err
	}

	delete(m.audioFiles, id)
	for tid, t := range m.transcriptions {
		if t.AudioFileID == id {
			delete(m.transcriptions, tid)
		}
	}
	return nil
}

func (m *MockTranscriptionDAO) CreateTranscription(ctx context.Context, userID string, audioFileID int64, text string) (*model.TranscriptionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.track("CreateTranscription", m.ErrorMap["CreateTranscription"], userID, audioFileID, text); err != nil {
		return nil, err
	}

	record := &model.TranscriptionRecord{
		ID:                m.nextID,
		UserID:            userID,
		AudioFileID:       audioFileID,
		TranscriptionText: text,
		CreatedAt:         time.Now().UTC(),
	}
	m.transcriptions[record.ID] = record
	m.nextID++

	copied := *record
	return &copied, nil
}

func (m *MockTranscriptionDAO) ListByUser(ctx context.Context, userID string) ([]model.UserTranscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.track("ListByUser", m.ErrorMap["ListByUser"], userID); err != nil {
		return nil, err
	}

	result := make([]model.UserTranscription, 0)
	for _, t := range m.transcriptions {
		if t.UserID != userID {
			continue
		}
		var fileURL string
		if a, ok := m.audioFiles[t.AudioFileID]; ok {
			fileURL = a.FileURL
		}
		result = append(result, model.UserTranscription{TranscriptionRecord: *t, FileURL: fileURL})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// Seed stores a transcription and its audio file directly, bypassing ErrorMap
// and call tracking.
func (m *MockTranscriptionDAO) Seed(userID, fileURL, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	audioFile := &model.AudioFile{ID: m.nextID, UserID: userID, FileURL: fileURL, CreatedAt: time.Now().UTC()}
	m.audioFiles[audioFile.ID] = audioFile
	m.nextID++
	m.transcriptions[m.nextID] = &model.TranscriptionRecord{
		ID:                m.nextID,
		UserID:            userID,
		AudioFileID:       audioFile.ID,
		TranscriptionText: text,
		CreatedAt:         time.Now().UTC(),
	}
	m.nextID++
}

// CallCount returns how many times method was called.
func (m *MockTranscriptionDAO) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, call := range m.CallHistory {
		if call.Method == method {
			count++
		}
	}
	return count
}

// TotalCalls returns the number of recorded calls across all methods.
func (m *MockTranscriptionDAO) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.CallHistory)
}

// AudioFileCount returns the number of stored audio files.
func (m *MockTranscriptionDAO) AudioFileCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.audioFiles)
}

// TranscriptionCount returns the number of stored transcriptions.
func (m *MockTranscriptionDAO) TranscriptionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.transcriptions)
}

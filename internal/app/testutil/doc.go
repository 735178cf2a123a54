// Package testutil provides in-memory fakes and fixtures for the upload and
// download pipeline.
//
//   - MockTranscriptionDAO: in-memory repository.TranscriptionDAO with per-method
//     failure injection and call history
//   - MockObjectStore: in-memory storage.ObjectStore
//   - MockTranscriber: testify mock of api.Transcriber
//
// Example:
//
//	dao := testutil.NewMockTranscriptionDAO()
//	dao.ErrorMap["CreateTranscription"] = errors.New("db down")
//	store := testutil.NewMockObjectStore()
//	transcriber := testutil.NewMockTranscriber()
//	transcriber.On("Transcript", mock.Anything, mock.Anything).Return("hello", nil)
package testutil

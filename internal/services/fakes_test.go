package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gtdn/registry-api/internal/models"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

// fakeCache is an in-memory CacheServiceInterface that delegates hashing to
// the real implementation
type fakeCache struct {
	mu     sync.Mutex
	items  map[string]string
	hasher CacheServiceInterface
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		items:  make(map[string]string),
		hasher: NewCacheService(nil, testLogger()),
	}
}

func (f *fakeCache) Get(_ context.Context, namespace string, keyParts ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.items[makeKey(namespace, keyParts...)]
	if !ok {
		return "", ErrCacheMiss
	}
	return val, nil
}

func (f *fakeCache) Set(_ context.Context, value string, _ time.Duration, namespace string, keyParts ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[makeKey(namespace, keyParts...)] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, namespace string, keyParts ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, makeKey(namespace, keyParts...))
	return nil
}

func (f *fakeCache) Clear(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = make(map[string]string)
	return nil
}

func (f *fakeCache) HashParams(params interface{}) (string, error) {
	return f.hasher.HashParams(params)
}

func (f *fakeCache) GetStats(context.Context) (map[string]interface{}, error) {
	return map[string]interface{}{}, nil
}

func (f *fakeCache) Health() map[string]interface{} {
	return map[string]interface{}{}
}

// keysWithPrefix lists stored keys under a prefix, for asserting cache
// side effects
func (f *fakeCache) keysWithPrefix(prefix string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var keys []string
	for k := range f.items {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys
}

// fakeThrottle counts Allow calls and can deny them all
type fakeThrottle struct {
	mu    sync.Mutex
	deny  bool
	calls int
}

func (f *fakeThrottle) Allow(context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return !f.deny
}

// fakeAresClient records upstream invocations
type fakeAresClient struct {
	mu           sync.Mutex
	searchCalls  int
	detailCalls  int
	searchResult models.AresSearchResponse
	detailResult models.AresEconomicSubject
	err          error
}

func (f *fakeAresClient) Search(context.Context, models.AresSearchRequest) (*models.AresSearchResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	if f.err != nil {
		return nil, f.err
	}
	result := f.searchResult
	return &result, nil
}

func (f *fakeAresClient) GetByICO(context.Context, string) (*models.AresEconomicSubject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailCalls++
	if f.err != nil {
		return nil, f.err
	}
	result := f.detailResult
	return &result, nil
}

// fakeJusticeClient serves canned CSV and PDF payloads
type fakeJusticeClient struct {
	mu         sync.Mutex
	csvCalls   int
	docCalls   int
	csvPayload []byte
	docPayload []byte
	docErr     error
	csvErr     error
}

func (f *fakeJusticeClient) DownloadCSV(context.Context, string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.csvCalls++
	if f.csvErr != nil {
		return nil, f.csvErr
	}
	return f.csvPayload, nil
}

func (f *fakeJusticeClient) DownloadDocument(_ context.Context, documentID string) ([]byte, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docCalls++
	if f.docErr != nil {
		return nil, "", f.docErr
	}
	return f.docPayload, "https://or.justice.cz/ias/content/download?id=" + documentID, nil
}

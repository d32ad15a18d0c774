package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/dumpreader/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func (m *MockS3Client) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	args := m.Called(ctx, params)
	out, _ := args.Get(0).(*s3.ListObjectsV2Output)
	return out, args.Error(1)
}

func TestStore_Open(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", "dumps/")

	t.Run("NoSuchKey", func(t *testing.T) {
		mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
			return *input.Bucket == "test-bucket" && *input.Key == "dumps/movies/settings.json"
		})).Return(nil, &types.NoSuchKey{}).Once()

		_, err := store.Open(context.Background(), "movies/settings.json")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
			return *input.Key == "dumps/metadata.json"
		})).Return(&s3.GetObjectOutput{
			Body: io.NopCloser(strings.NewReader(`{"format_version":1}`)),
		}, nil).Once()

		rc, err := store.Open(context.Background(), "metadata.json")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, `{"format_version":1}`, string(data))
	})

	t.Run("OtherError", func(t *testing.T) {
		boom := errors.New("access denied")
		mockClient.On("GetObject", mock.Anything, mock.MatchedBy(func(input *s3.GetObjectInput) bool {
			return *input.Key == "dumps/secret"
		})).Return(nil, boom).Once()

		_, err := store.Open(context.Background(), "secret")
		assert.ErrorIs(t, err, boom)
		assert.False(t, errors.Is(err, blobstore.ErrNotFound))
	})

	mockClient.AssertExpectations(t)
}

func TestStore_List(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", "dumps")

	mockClient.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(input *s3.ListObjectsV2Input) bool {
		return *input.Bucket == "test-bucket" && *input.Prefix == "dumps/" && *input.Delimiter == "/"
	})).Return(&s3.ListObjectsV2Output{
		CommonPrefixes: []types.CommonPrefix{
			{Prefix: aws.String("dumps/movies/")},
			{Prefix: aws.String("dumps/books/")},
		},
		Contents: []types.Object{
			{Key: aws.String("dumps/metadata.json")},
			{Key: aws.String("dumps/")},
		},
	}, nil).Once()

	entries, err := store.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []blobstore.Entry{
		{Name: "books", IsDir: true},
		{Name: "metadata.json"},
		{Name: "movies", IsDir: true},
	}, entries)
	mockClient.AssertExpectations(t)
}

func TestStore_List_Pagination(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", "")

	mockClient.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(input *s3.ListObjectsV2Input) bool {
		return *input.Prefix == "movies/" && input.ContinuationToken == nil
	})).Return(&s3.ListObjectsV2Output{
		Contents:              []types.Object{{Key: aws.String("movies/settings.json")}},
		IsTruncated:           aws.Bool(true),
		NextContinuationToken: aws.String("token-1"),
	}, nil).Once()

	mockClient.On("ListObjectsV2", mock.Anything, mock.MatchedBy(func(input *s3.ListObjectsV2Input) bool {
		return input.ContinuationToken != nil && *input.ContinuationToken == "token-1"
	})).Return(&s3.ListObjectsV2Output{
		Contents: []types.Object{
			{Key: aws.String("movies/documents.jsonl")},
			{Key: aws.String("movies/updates.jsonl")},
		},
		IsTruncated: aws.Bool(false),
	}, nil).Once()

	entries, err := store.List(context.Background(), "movies")
	require.NoError(t, err)
	assert.Equal(t, []blobstore.Entry{
		{Name: "documents.jsonl"},
		{Name: "settings.json"},
		{Name: "updates.jsonl"},
	}, entries)
	mockClient.AssertExpectations(t)
}

func TestStore_List_MissingDir(t *testing.T) {
	mockClient := new(MockS3Client)
	store := NewStore(mockClient, "test-bucket", "dumps")

	mockClient.On("ListObjectsV2", mock.Anything, mock.Anything).
		Return(&s3.ListObjectsV2Output{}, nil).Once()

	_, err := store.List(context.Background(), "missing")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestStore_key(t *testing.T) {
	assert.Equal(t, "a/b", NewStore(nil, "b", "/a/").key("b"))
	assert.Equal(t, "b", NewStore(nil, "b", "").key("b"))
	assert.Equal(t, "", NewStore(nil, "b", "").dirPrefix(""))
	assert.Equal(t, "a/", NewStore(nil, "b", "a").dirPrefix(""))
}

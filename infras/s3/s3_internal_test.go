package s3

import (
	"context"
	"errors"
	"io"
	"testing"

	"tablebook/config"
	"tablebook/infras/otel/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	puts    []*s3.PutObjectInput
	bodies  [][]byte
	deletes []*s3.DeleteObjectInput
	err     error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	body, _ := io.ReadAll(params.Body)
	f.puts = append(f.puts, params)
	f.bodies = append(f.bodies, body)

	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.deletes = append(f.deletes, params)

	return &s3.DeleteObjectOutput{}, nil
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "images"
	cfg.External.S3.PublicDomain = "https://cdn.example.com/"

	return cfg
}

func TestUpload(t *testing.T) {
	api := &fakeObjectAPI{}
	svc := newWithClient(api, newTestConfig(), mocks.NewOtel())

	url, err := svc.Upload(context.Background(), "restaurant", "abc.png", "image/png", []byte("png"))
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/restaurant/abc.png", url)
	require.Len(t, api.puts, 1)
	assert.Equal(t, "images", aws.ToString(api.puts[0].Bucket))
	assert.Equal(t, "restaurant/abc.png", aws.ToString(api.puts[0].Key))
	assert.Equal(t, "image/png", aws.ToString(api.puts[0].ContentType))
	assert.Equal(t, []byte("png"), api.bodies[0])
}

func TestUploadError(t *testing.T) {
	svc := newWithClient(&fakeObjectAPI{err: errors.New("boom")}, newTestConfig(), mocks.NewOtel())

	_, err := svc.Upload(context.Background(), "restaurant", "abc.png", "image/png", []byte("png"))
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	api := &fakeObjectAPI{}
	svc := newWithClient(api, newTestConfig(), mocks.NewOtel())

	require.NoError(t, svc.Delete(context.Background(), "https://cdn.example.com/restaurant/abc.png"))
	require.Len(t, api.deletes, 1)
	assert.Equal(t, "restaurant/abc.png", aws.ToString(api.deletes[0].Key))

	require.NoError(t, svc.Delete(context.Background(), "https://elsewhere.example.com/x.png"))
	assert.Len(t, api.deletes, 1)
}

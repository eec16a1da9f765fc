package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

const UploadBasePath = "./uploads"

var (
	s3Session       *session.Session
	s3Bucket        string
	s3Region        string
	cloudFrontURL   string
	useLocalStorage = true
)

func InitLocalStorage() error {
	if err := os.MkdirAll(UploadBasePath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %v", err)
	}
	return nil
}

func InitS3(bucket, region, cdnURL string) error {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return err
	}

	s3Session = sess
	s3Bucket = bucket
	s3Region = region
	cloudFrontURL = cdnURL
	useLocalStorage = false
	return nil
}

// UploadFile stores the file and returns a public URL: S3 when
// configured, local disk otherwise.
func UploadFile(file *multipart.FileHeader) (string, error) {
	if useLocalStorage {
		return uploadToLocal(file)
	}
	return uploadToS3(file)
}

func uploadToS3(file *multipart.FileHeader) (string, error) {
	if s3Session == nil {
		return "", fmt.Errorf("S3 not initialized")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	key := fmt.Sprintf("%s/%s%s",
		time.Now().Format("2006/01"),
		uuid.New().String(),
		ext,
	)

	svc := s3.New(s3Session)

	_, err = svc.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s3Bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
		ACL:         aws.String("public-read"),
	})
	if err != nil {
		return "", err
	}

	if cloudFrontURL != "" {
		return cloudFrontURL + "/" + key, nil
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s3Bucket, s3Region, key), nil
}

func uploadToLocal(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %v", err)
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("%s-%s%s",
		time.Now().Format("20060102-150405"),
		uuid.New().String()[:8],
		ext,
	)

	dst, err := os.Create(filepath.Join(UploadBasePath, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %v", err)
	}

	return "/uploads/" + filename, nil
}

func GetStorageMode() string {
	if useLocalStorage {
		return "local"
	}
	return "s3"
}

func SetStorageMode(useLocal bool) {
	useLocalStorage = useLocal
}

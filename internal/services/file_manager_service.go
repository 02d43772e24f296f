package services

import (
	"context"
	"fmt"
	"socketBoard/internal/enums"
	"socketBoard/internal/interfaces"
	"socketBoard/internal/models"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FileManagerService archives saved canvases through a FileManager.
type FileManagerService struct {
	fileManager interfaces.FileManager
	bucketName  string
	logger      *zap.Logger
	now         func() time.Time
}

func NewFileManagerService(fileManager interfaces.FileManager, bucketName string, logger *zap.Logger) *FileManagerService {
	return &FileManagerService{
		fileManager: fileManager,
		bucketName:  bucketName,
		logger:      logger.Named("archive"),
		now:         time.Now,
	}
}

// ArchiveCanvas uploads one snapshot as whiteboards/<id>/<unix-nanos>.
func (fs *FileManagerService) ArchiveCanvas(ctx context.Context, whiteboard *models.Whiteboard) (string, error) {
	fileName := fmt.Sprintf("%s/%s/%d", enums.FILE_PREFIX_CANVAS, whiteboard.ID, fs.now().UnixNano())
	return fs.fileManager.UploadFile(
		ctx,
		fileName,
		strings.NewReader(whiteboard.ImageData),
		int64(len(whiteboard.ImageData)),
		enums.FILE_CONTENT_TYPE_CANVAS,
		fs.bucketName,
	)
}

// ArchiveInBackground never reports back to the saver; failures are logged.
func (fs *FileManagerService) ArchiveInBackground(whiteboard *models.Whiteboard) {
	snapshot := *whiteboard
	go func() {
		url, err := fs.ArchiveCanvas(context.Background(), &snapshot)
		if err != nil {
			fs.logger.Warn("Error archiving canvas",
				zap.String("whiteboard_id", snapshot.ID),
				zap.Error(err),
			)
			return
		}
		fs.logger.Debug("Canvas archived",
			zap.String("whiteboard_id", snapshot.ID),
			zap.String("url", url),
		)
	}()
}

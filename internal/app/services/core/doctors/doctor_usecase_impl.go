package doctors

import (
	"context"

	"doctorportal-service/internal/app/config"
	"doctorportal-service/internal/app/contracts"
	"doctorportal-service/internal/app/models"
	"doctorportal-service/internal/pkg/dto/requests"
	"doctorportal-service/internal/pkg/dto/responses"
	"doctorportal-service/internal/pkg/utils"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	MinioStorage     contracts.Storage
	DriverConfig     *config.DriverConfig
}

func NewDoctorUsecase(
	doctorMongoRepository contracts.DoctorRepository,
	minioStorage contracts.Storage,
	driverConfig *config.DriverConfig,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorMongoRepository,
		MinioStorage:     minioStorage,
		DriverConfig:     driverConfig,
	}
}

func (uc *doctorUsecase) GetAllDoctors(ctx context.Context) ([]models.Doctor, error) {
	return uc.DoctorRepository.FindAll(ctx)
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.InsertResult, error) {
	doctor := request.ToModel()

	if len(request.ImageData) > 0 {
		fileName := utils.GenerateFileName("doctor", request.Email, request.ImageExtension)
		objectName, err := uc.MinioStorage.UploadBase64Image(
			ctx,
			request.ImageData,
			uc.DriverConfig.Minio.BucketName,
			fileName,
			request.ImageExtension,
		)
		if err != nil {
			return nil, err
		}
		doctor.Image = objectName
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}

	return &responses.InsertResult{
		Acknowledged: true,
		InsertedID:   doctorID,
	}, nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) (*responses.DeleteResult, error) {
	return uc.DoctorRepository.DeleteByID(ctx, doctorID)
}

package config

type (
	InternalConfig struct {
		App    App
		JWT    JWT
		Mailer Mailer
	}

	App struct {
		Env                        string
		Port                       string
		MaxRequests                int
		ShutdownTimeout            int
		BookingRateLimit           int
		BookingRateWindowInSeconds int
		DoctorPhotoMaxUploadSizeMB int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	Mailer struct {
		BookingConfirmationQueue string
	}
)

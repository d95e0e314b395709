package constvars

// Formats accepted for doctor photos.
var ImageAllowedDoctorPhotoFormats = []string{".jpg", ".jpeg", ".png"}

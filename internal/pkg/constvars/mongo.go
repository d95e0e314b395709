package constvars

const (
	MongoCollectionAppointmentOptions = "appointmentOptions"
	MongoCollectionBookings           = "bookings"
	MongoCollectionUsers              = "users"
	MongoCollectionDoctors            = "doctors"
)

const RoleAdmin = "admin"

package constvars

const (
	RegisterSuccessMessage      = "User registered successfully"
	LoginSuccessMessage         = "Login successful"
	LogoutSuccessMessage        = "Logout successful"
	GetProfileSuccessMessage    = "User fetched successfully"
	UpdateProfileSuccessMessage = "User updated successfully"
	DeleteUserSuccessMessage    = "User deleted successfully"

	CreateChildSuccessMessage = "Child added successfully"
	GetChildrenSuccessMessage = "Children fetched successfully"

	GetDoctorsSuccessMessage   = "Doctors fetched successfully"
	UpdateDoctorSuccessMessage = "Doctor updated successfully"

	CreateArticleSuccessMessage = "Article created successfully"
	GetArticlesSuccessMessage   = "Articles fetched successfully"
	GetArticleSuccessMessage    = "Article fetched successfully"
	UpdateArticleSuccessMessage = "Article updated successfully"
	DeleteArticleSuccessMessage = "Article deleted successfully"

	GetNotificationsSuccessMessage   = "Notifications fetched successfully"
	GetNotificationSuccessMessage    = "Notification fetched successfully"
	ReadNotificationSuccessMessage   = "Notification marked as read"
	DeleteNotificationSuccessMessage = "Notification deleted successfully"

	CreateAppointmentSuccessMessage  = "Appointment created"
	GetAppointmentsSuccessMessage    = "Appointments fetched successfully"
	GetAppointmentSuccessMessage     = "Appointment fetched successfully"
	GetScheduleSuccessMessage        = "Appointment dates and times fetched successfully"
	UpdateAppointmentSuccessMessage  = "Appointment updated"
	DeleteAppointmentSuccessMessage  = "Appointment deleted"
	CounterAppointmentSuccessMessage = "Appointment countered"
	AcceptAppointmentSuccessMessage  = "Appointment accepted"
	RejectAppointmentSuccessMessage  = "Appointment rejected"

	HealthCheckSuccessMessage = "ok"
)

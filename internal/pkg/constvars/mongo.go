package constvars

const (
	MongoCollectionUsers         = "users"
	MongoCollectionChildren      = "children"
	MongoCollectionArticles      = "articles"
	MongoCollectionNotifications = "notifications"
	MongoCollectionAppointments  = "appointments"
)

package exceptions

import (
	"fmt"
	"mamacare-service/internal/pkg/constvars"
)

var (
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrImageValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidImageFormat, constvars.ErrDevImageValidationFailed)
	}
	ErrImageTooLarge = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientImageTooLarge, constvars.ErrDevImageTooLarge)
	}
	ErrMeetingLinkRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMeetingLinkRequired, constvars.ErrDevMeetingLinkRequired)
	}
	ErrDoctorFieldsRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientDoctorFieldsRequired, constvars.ErrDevDoctorFieldsMissing)
	}
	ErrNothingToUpdate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientNothingToUpdate, constvars.ErrDevNothingToUpdate)
	}
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrMissingSessionData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevMissingSessionData)
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Auth
	ErrInvalidCredentials = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidCredentials, constvars.ErrDevInvalidCredentials)
	}
	ErrUserAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientUserAlreadyExists, constvars.ErrDevEmailAlreadyExists)
	}
	ErrTooManyLoginAttempts = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyLoginAttempts, constvars.ErrDevLoginRateLimited)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrTokenSigningMethod = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSigningMethod)
	}
	ErrSessionNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSessionNotFound)
	}
	ErrNotMatchRoleType = func(err error, role, operation string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrDevRoleTypeDoesntMatch, role, operation))
	}

	// Not found
	ErrUserNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientUserNotFound, constvars.ErrDevUserNotExists)
	}
	ErrDoctorNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientDoctorNotFound, constvars.ErrDevDoctorNotExists)
	}
	ErrChildNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientChildNotFound, constvars.ErrDevChildNotExists)
	}
	ErrArticleNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientArticleNotFound, constvars.ErrDevArticleNotExists)
	}
	ErrNotificationNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientNotificationNotFound, constvars.ErrDevNotificationNotExists)
	}
	ErrAppointmentNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevAppointmentNotExists)
	}

	// Appointment lifecycle
	ErrOnlyDoctorCanDecide = func(err error, role, operation string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, fmt.Sprintf(constvars.ErrClientOnlyDoctorCanDecide, operation), fmt.Sprintf(constvars.ErrDevRoleTypeDoesntMatch, role, operation))
	}
	ErrOnlyParentCanModify = func(err error, role, operation string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusForbidden, fmt.Sprintf(constvars.ErrClientOnlyParentCanModify, operation), fmt.Sprintf(constvars.ErrDevRoleTypeDoesntMatch, role, operation))
	}
	ErrInvalidStatusTransition = func(err error, operation, status string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, fmt.Sprintf(constvars.ErrClientInvalidTransition, operation), fmt.Sprintf(constvars.ErrDevInvalidTransition, operation, status))
	}
	ErrAppointmentLocked = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientAppointmentBusy, constvars.ErrDevAppointmentLocked)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBCreateIndex = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToCreateIndex)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisGetNoData = func(err error, redisKey string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisGetNoData, redisKey))
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrementData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQOpenChannel = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQOpenChannel)
	}
	ErrRabbitMQChannelNotOpened = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQChannelNotOpened)
	}
	ErrRabbitMQDeclareExchange = func(err error, exchange string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQDeclareExchange, exchange))
	}
	ErrRabbitMQDeclareQueue = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQDeclareQueue, queue))
	}
	ErrRabbitMQPublishMessage = func(err error, exchange string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, exchange))
	}
	ErrRabbitMQConsumeQueue = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQConsumeQueue, queue))
	}
)

package apiresponse

const (
	MsgLoginSuccess = "loginSuccess"
	MsgLoginFailed  = "emailOrPasswordWrong"
	MsgUnauthorized = "unauthorized"
	MsgForbidden    = "forbidden"

	MsgInternalError    = "internalError"
	MsgValidationError  = "validationError"
	MsgInvalidID        = "invalidID"
	MsgEndpointNotFound = "endpointNotFound"

	MsgTasksFetched   = "tasksFetched"
	MsgTaskFetched    = "taskFetched"
	MsgTaskCreated    = "taskCreated"
	MsgTaskUpdated    = "taskUpdated"
	MsgTaskDeleted    = "taskDeleted"
	MsgTaskNotFound   = "taskNotFound"
	MsgFailListTask   = "failListTask"
	MsgFailGetTask    = "failGetTask"
	MsgFailCreateTask = "failCreateTask"
	MsgFailUpdateTask = "failUpdateTask"
	MsgFailDeleteTask = "failDeleteTask"

	MsgUsersFetched   = "usersFetched"
	MsgUserFetched    = "userFetched"
	MsgUserCreated    = "userCreated"
	MsgUserUpdated    = "userUpdated"
	MsgUserDeleted    = "userDeleted"
	MsgUserNotFound   = "userNotFound"
	MsgEmailTaken     = "emailTaken"
	MsgFailListUsers  = "failListUsers"
	MsgFailGetUser    = "failGetUser"
	MsgFailCreateUser = "failCreateUser"
	MsgFailUpdateUser = "failUpdateUser"
	MsgFailDeleteUser = "failDeleteUser"

	MsgLogsFetched  = "logsFetched"
	MsgFailListLogs = "failListLogs"

	MsgDashboardFetched = "dashboardFetched"
	MsgFailGetDashboard = "failGetDashboard"
)

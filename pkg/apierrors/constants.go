package apierrors

const (
	MsgUnauthorized        = "unauthorized"
	MsgTooManyRequests     = "tooManyRequests"
	MsgTaskNotFound        = "taskNotFound"
	MsgPlantNotFound       = "plantNotFound"
	MsgInvalidTaskID       = "invalidTaskID"
	MsgInvalidTaskPayload  = "invalidTaskPayload"
	MsgInvalidPlantID      = "invalidPlantID"
	MsgInvalidPlantPayload = "invalidPlantPayload"
	MsgInvalidReportQuery  = "invalidReportQuery"
	MsgFailGenerateTasks   = "failGenerateTasks"
	MsgFailListTasks       = "failListTasks"
	MsgFailCompleteTask    = "failCompleteTask"
	MsgFailPostponeTask    = "failPostponeTask"
	MsgFailCreatePlant     = "failCreatePlant"
	MsgFailListPlants      = "failListPlants"
	MsgFailDeletePlant     = "failDeletePlant"
	MsgFailEstimateFreq    = "failEstimateFreq"
	MsgFailWeatherAdvice   = "failWeatherAdvice"
	MsgFailSuggestions     = "failSuggestions"
	MsgFailCalendar        = "failCalendar"
	MsgFailReport          = "failReport"
)

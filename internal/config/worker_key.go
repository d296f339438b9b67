package config

type WorkerKeyStruct struct {
	SubmissionLogQueue string
}

var WorkerKey = &WorkerKeyStruct{
	SubmissionLogQueue: "asts:submission_log_queue",
}

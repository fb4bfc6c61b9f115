package steps

func (fc *FeatureContext) theEmployeeSubmitsATaskLogWithNote(note string) error {
	fc.asEmployee()
	defer fc.asAdmin()

	response, err := fc.apiDriver.SubmitTaskLog(fc.dutyID, map[string]any{"note": note})
	if err != nil {
		return err
	}
	fc.response = response

	var data map[string]any
	if err := fc.decodeBody(response.Body, &data); err == nil {
		if id, ok := data["id"].(string); ok {
			fc.taskLogID = id
		}
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) theAdminReviewsTheTaskLogWithStatus(status string) error {
	response, err := fc.apiDriver.ReviewTaskLog(fc.taskLogID, status, "reviewed during functional run")
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iGetTheTaskLogByItsID() error {
	response, err := fc.apiDriver.GetTaskLog(fc.taskLogID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheTaskLogWithStatus(status string) error {
	var data map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))
	fc.require.Equal(status, data["status"])
	return nil
}

func (fc *FeatureContext) theEmployeeListsTheirTaskLogs() error {
	fc.asEmployee()
	defer fc.asAdmin()

	response, err := fc.apiDriver.ListTaskLogs()
	if err != nil {
		return err
	}
	fc.response = response

	data, err := fc.decodePaginatedResponse(response)
	if err != nil {
		return err
	}
	fc.responseListData = data
	return nil
}

func (fc *FeatureContext) theListShouldContainTheTaskLog() error {
	for _, item := range fc.responseListData {
		if item["id"] == fc.taskLogID {
			return nil
		}
	}
	fc.require.Failf("task log not found", "task log %q missing from list", fc.taskLogID)
	return nil
}

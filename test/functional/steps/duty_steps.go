package steps

func (fc *FeatureContext) iCreateADutyForTheDepartmentWithTitle(title string) error {
	response, err := fc.apiDriver.CreateDuty(fc.departmentID, title)
	if err != nil {
		return err
	}
	fc.response = response

	var data map[string]any
	if err := fc.decodeBody(response.Body, &data); err == nil {
		if id, ok := data["id"].(string); ok {
			fc.dutyID = id
		}
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) aDutyExistsForTheDepartmentWithTitle(title string) error {
	if err := fc.iCreateADutyForTheDepartmentWithTitle(title); err != nil {
		return err
	}
	fc.require.Equal(201, fc.response.StatusCode)
	fc.require.NotEmpty(fc.dutyID)
	return nil
}

func (fc *FeatureContext) iGetTheDutyByItsID() error {
	response, err := fc.apiDriver.GetDuty(fc.dutyID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheDutyWithTitle(title string) error {
	var data map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))
	fc.require.Equal(title, data["title"])
	return nil
}

func (fc *FeatureContext) iListTheDutiesOfTheDepartment() error {
	response, err := fc.apiDriver.ListDepartmentDuties(fc.departmentID)
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

func (fc *FeatureContext) theListShouldContainTheDutyWithTitle(title string) error {
	for _, item := range fc.responseListData {
		if item["title"] == title {
			return nil
		}
	}
	fc.require.Failf("duty not found", "no duty titled %q in list", title)
	return nil
}

func (fc *FeatureContext) iFetchTheDutysFormSchema() error {
	response, err := fc.apiDriver.GetFormSchema(fc.dutyID)
	if err != nil {
		return err
	}
	fc.response = response

	var data map[string]any
	if err := fc.decodeBody(response.Body, &data); err == nil {
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) theSchemaShouldContainTheField(name string) error {
	fields, ok := fc.responseData["fields"].([]any)
	fc.require.True(ok, "schema should contain a fields array")
	for _, raw := range fields {
		if field, ok := raw.(map[string]any); ok && field["name"] == name {
			return nil
		}
	}
	fc.require.Failf("field not found", "no field named %q in schema", name)
	return nil
}

func (fc *FeatureContext) iValidateASubmissionWithNote(note string) error {
	return fc.validateSubmission(map[string]any{"note": note})
}

func (fc *FeatureContext) iValidateAnEmptySubmission() error {
	return fc.validateSubmission(map[string]any{})
}

func (fc *FeatureContext) validateSubmission(data map[string]any) error {
	response, err := fc.apiDriver.ValidateSubmission(fc.dutyID, data)
	if err != nil {
		return err
	}
	fc.response = response

	var result map[string]any
	if err := fc.decodeBody(response.Body, &result); err == nil {
		fc.responseData = result
	}
	return nil
}

func (fc *FeatureContext) theValidationResultShouldBeValid() error {
	fc.require.Equal(true, fc.responseData["valid"])
	return nil
}

func (fc *FeatureContext) theValidationResultShouldBeInvalid() error {
	fc.require.Equal(false, fc.responseData["valid"])
	return nil
}

func (fc *FeatureContext) iDeactivateTheDuty() error {
	response, err := fc.apiDriver.DeactivateDuty(fc.dutyID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

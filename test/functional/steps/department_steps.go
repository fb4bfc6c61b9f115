package steps

func (fc *FeatureContext) iCreateANewDepartmentWithNameAndEmail(name, email string) error {
	response, err := fc.apiDriver.CreateDepartment(name, email)
	if err != nil {
		return err
	}
	fc.response = response

	var data map[string]any
	if err := fc.decodeBody(response.Body, &data); err == nil {
		if id, ok := data["id"].(string); ok {
			fc.departmentID = id
		}
		fc.responseData = data
	}
	return nil
}

func (fc *FeatureContext) aDepartmentExistsWithNameAndEmail(name, email string) error {
	if err := fc.iCreateANewDepartmentWithNameAndEmail(name, email); err != nil {
		return err
	}
	fc.require.Equal(201, fc.response.StatusCode)
	fc.require.NotEmpty(fc.departmentID)
	return nil
}

func (fc *FeatureContext) iGetTheDepartmentByItsID() error {
	response, err := fc.apiDriver.GetDepartment(fc.departmentID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheDepartmentWithName(name string) error {
	var data map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))
	fc.require.Equal(name, data["name"])
	return nil
}

func (fc *FeatureContext) iListAllDepartments() error {
	response, err := fc.apiDriver.ListDepartments()
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

func (fc *FeatureContext) theListShouldContainTheDepartmentWithName(name string) error {
	for _, item := range fc.responseListData {
		if item["name"] == name {
			return nil
		}
	}
	fc.require.Failf("department not found", "no department named %q in list", name)
	return nil
}

func (fc *FeatureContext) iDeleteTheDepartment() error {
	response, err := fc.apiDriver.DeleteDepartment(fc.departmentID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iUpdateTheDepartmentWithANewName(newName string) error {
	response, err := fc.apiDriver.UpdateDepartment(fc.departmentID, newName)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

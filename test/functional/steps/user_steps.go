package steps

import "fmt"

func (fc *FeatureContext) anEmployeeExistsWithNameAssignedToTheDuty(name string) error {
	email := fmt.Sprintf("%s@workforcehub.app", name)
	response, err := fc.apiDriver.CreateUser(name, email, "employee", fc.departmentID)
	if err != nil {
		return err
	}
	fc.require.Equal(201, response.StatusCode)

	var data map[string]any
	fc.require.NoError(fc.decodeBody(response.Body, &data))
	id, ok := data["id"].(string)
	fc.require.True(ok, "user response should carry an id")
	fc.employeeID = id

	assignResponse, err := fc.apiDriver.AssignDuty(fc.employeeID, fc.dutyID)
	if err != nil {
		return err
	}
	fc.require.Equal(204, assignResponse.StatusCode)
	return nil
}

func (fc *FeatureContext) iPutTheEmployeeOnLeaveUntil(until string) error {
	response, err := fc.apiDriver.BeginLeave(fc.employeeID, until)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iEndTheEmployeesLeave() error {
	response, err := fc.apiDriver.EndLeave(fc.employeeID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) iGetTheEmployeeByTheirID() error {
	response, err := fc.apiDriver.GetUser(fc.employeeID)
	if err != nil {
		return err
	}
	fc.response = response
	return nil
}

func (fc *FeatureContext) theResponseShouldContainTheUserWithStatus(status string) error {
	var data map[string]any
	fc.require.NoError(fc.decodeBody(fc.response.Body, &data))
	fc.require.Equal(status, data["status"])
	return nil
}

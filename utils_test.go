package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadConfigTokenJSON(t *testing.T) {
	o, err := readConfigFile("tests/token_auth_file.json")
	if err != nil {
		t.Errorf("raising an error: %v", err)
	}

	expected := "foobar"

	if o["token"] != expected {
		t.Errorf("Expected token %s got %s", expected, o["token"])
	}
}

func TestReadConfigTokenYAML(t *testing.T) {
	o, err := readConfigFile("tests/token_auth_file.yml")
	if err != nil {
		t.Errorf("raising an error: %v", err)
	}

	expected := "foobar"

	if o["token"] != expected {
		t.Errorf("Expected token %s got %s", expected, o["token"])
	}
}

func TestReadConfigUserPassJSON(t *testing.T) {
	o, err := readConfigFile("tests/userpass_auth_file.json")
	if err != nil {
		t.Errorf("raising an error: %v", err)
	}

	userExpected := "admin"
	passwordExpected := "foobar"

	if o["username"] != userExpected {
		t.Errorf("Expected user %s got %s", userExpected, o["username"])
	}

	if o["password"] != passwordExpected {
		t.Errorf("Expected user %s got %s", passwordExpected, o["password"])
	}
}

func TestReadConfigAppRoleYAML(t *testing.T) {
	o, err := readConfigFile("tests/approle_auth_file.yml")
	assert.NoError(t, err)
	assert.Equal(t, "approle", o[VaultAuth])
	assert.Equal(t, "admin", o["role_id"])
	assert.Equal(t, "foobar", o["secret_id"])
}

func TestReadConfigFileMissing(t *testing.T) {
	_, err := readConfigFile("tests/does_not_exist.json")
	assert.Error(t, err)
}

func TestGetKeys(t *testing.T) {
	data := map[string]interface{}{
		"zulu":  1,
		"alpha": 2,
		"mike":  3,
	}
	assert.Equal(t, []string{"alpha", "mike", "zulu"}, getKeys(data))
	assert.Empty(t, getKeys(map[string]interface{}{}))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("PASSGEN_TEST_VALUE", "set")
	assert.Equal(t, "set", getEnv("PASSGEN_TEST_VALUE", "default"))

	t.Setenv("PASSGEN_TEST_VALUE", "")
	assert.Equal(t, "default", getEnv("PASSGEN_TEST_VALUE", "default"))
}

func TestFileExists(t *testing.T) {
	exists, err := fileExists("tests/token_auth_file.json")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fileExists("tests/does_not_exist.json")
	assert.NoError(t, err)
	assert.False(t, exists)
}

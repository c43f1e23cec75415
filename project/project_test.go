package project_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/refd/project"
)

func TestDetector_Detect(t *testing.T) {
	var testCases = []struct {
		description  string
		files        map[string]string
		path         string
		expectedRoot string
		expectedType string
		expectedName string
	}{
		{
			description:  "go module",
			files:        map[string]string{"svc/go.mod": "module github.com/acme/svc\n\ngo 1.23\n", "svc/pkg/a.go": "package pkg\n"},
			path:         "svc/pkg/a.go",
			expectedRoot: "svc",
			expectedType: "go",
			expectedName: "github.com/acme/svc",
		},
		{
			description:  "maven",
			files:        map[string]string{"shop/pom.xml": "<project><artifactId>shop-core</artifactId></project>", "shop/src/A.java": "class A {}"},
			path:         "shop/src",
			expectedRoot: "shop",
			expectedType: "java",
			expectedName: "shop-core",
		},
		{
			description:  "maven with parent",
			files:        map[string]string{"child/pom.xml": "<project>\n  <parent>\n    <artifactId>platform-parent</artifactId>\n  </parent>\n  <artifactId>orders</artifactId>\n</project>"},
			path:         "child",
			expectedRoot: "child",
			expectedType: "java",
			expectedName: "orders",
		},
		{
			description:  "gradle settings",
			files:        map[string]string{"app/settings.gradle": "rootProject.name = 'billing'\n", "app/src/B.java": ""},
			path:         "app/src/B.java",
			expectedRoot: "app",
			expectedType: "gradle",
			expectedName: "billing",
		},
		{
			description:  "refd config",
			files:        map[string]string{"mono/.refd.yaml": "report:\n  format: text\n", "mono/lib/x.txt": ""},
			path:         "mono/lib",
			expectedRoot: "mono",
			expectedType: "refd",
			expectedName: "mono",
		},
	}
	for _, testCase := range testCases {
		dir := t.TempDir()
		for name, content := range testCase.files {
			location := filepath.Join(dir, name)
			require.NoError(t, os.MkdirAll(filepath.Dir(location), 0755), testCase.description)
			require.NoError(t, os.WriteFile(location, []byte(content), 0644), testCase.description)
		}
		actual, err := project.NewDetector().WithCeiling(dir).Detect(context.Background(), filepath.Join(dir, testCase.path))
		require.NoError(t, err, testCase.description)
		assert.Equal(t, filepath.Join(dir, testCase.expectedRoot), actual.RootPath, testCase.description)
		assert.Equal(t, testCase.expectedType, actual.Type, testCase.description)
		assert.Equal(t, testCase.expectedName, actual.Name, testCase.description)
	}
}

func TestDetector_NoProject(t *testing.T) {
	dir := t.TempDir()
	_, err := project.NewDetector().WithCeiling(dir).Detect(context.Background(), dir)
	assert.True(t, errors.Is(err, project.ErrNoActiveProject))

	_, err = project.NewDetector().Detect(context.Background(), filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, project.ErrNoActiveProject))
}

func TestProject_Relative(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "src", "app")
	p := &project.Project{RootPath: root}
	var testCases = []struct {
		description string
		path        string
		expected    string
	}{
		{description: "inside", path: filepath.Join(root, "pkg", "A.java"), expected: "pkg/A.java"},
		{description: "outside", path: filepath.Join(string(filepath.Separator), "opt", "B.java"), expected: "/opt/B.java"},
		{description: "already relative", path: "pkg/C.java", expected: "pkg/C.java"},
		{description: "empty", path: "", expected: ""},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, p.Relative(testCase.path), testCase.description)
	}
	assert.Equal(t, filepath.Join(root, "pkg", "C.java"), p.Absolute("pkg/C.java"))

	var none *project.Project
	assert.Equal(t, "pkg/C.java", none.Relative("pkg/C.java"))
}

package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

func TestLoadFile(t *testing.T) {
	f, err := LoadFile("testdata/agency.yaml")
	require.NoError(t, err)

	c, err := f.Collections()
	require.NoError(t, err)
	assert.Len(t, c.Spaces, 2)
	assert.Len(t, c.Folders, 3)
	assert.Len(t, c.Projects, 2)
	assert.Len(t, c.Tasks, 4)

	assert.Equal(t, "space-clients", c.Folders[0].SpaceID)
	assert.True(t, c.Folders[1].Archived)
	assert.Equal(t, "Acme Corp", *c.Folders[0].ClientName)
	assert.Nil(t, c.Folders[2].ClientName)

	hiring := c.Projects[1]
	assert.Equal(t, model.ProjectTypeInternal, hiring.Type)
	assert.Equal(t, model.ProjectPlanning, hiring.Status)

	cms := c.Tasks[2]
	assert.Equal(t, "project-website", cms.ProjectID)
	assert.Equal(t, model.TaskTodo, cms.Status)
	assert.Equal(t, "2024-06-10", cms.DueDate.Format("2006-01-02"))
	assert.Nil(t, cms.StartDate)

	profiles, err := f.ProfileRows()
	require.NoError(t, err)
	require.Len(t, profiles, 4)
	assert.Equal(t, model.RoleAdmin, profiles[0].Role)
	assert.Equal(t, model.RoleMember, profiles[1].Role)
	assert.Nil(t, profiles[1].Email)
	assert.Equal(t, []string{"folder-acme"}, []string(profiles[3].ClientFolderIDs))
}

func TestFixtureRendersAsBoard(t *testing.T) {
	f, err := LoadFile("testdata/agency.yaml")
	require.NoError(t, err)
	c, err := f.Collections()
	require.NoError(t, err)

	out, err := viewmodel.Run(viewmodel.ResolveProjectRecords(c),
		viewmodel.Query{View: viewmodel.ViewList, Sort: viewmodel.SortSpec{Field: viewmodel.SortByTitle}},
		viewmodel.ComposeOptions{})
	require.NoError(t, err)
	require.Len(t, out.Rows, 2)
	assert.Equal(t, "Hiring", out.Rows[0].Name)
	website := out.Rows[1]
	assert.Equal(t, 3, website.TaskCount)
	assert.Equal(t, 1, website.CompletedCount)
	assert.InDelta(t, 48.0, website.EstimateHours, 1e-9)
	assert.ElementsMatch(t, []string{"user-ana", "user-ben"}, website.Assignees)
}

func TestLoadRejectsBadFixtures(t *testing.T) {
	cases := map[string]string{
		"unknown key": `
spaces:
  - id: s1
    colour: red
`,
		"duplicate id": `
spaces:
  - id: s1
    folders:
      - id: s1
`,
		"bad status": `
spaces:
  - id: s1
    folders:
      - id: f1
        projects:
          - id: p1
            tasks:
              - id: t1
                status: someday
`,
		"bad date": `
spaces:
  - id: s1
    folders:
      - id: f1
        projects:
          - id: p1
            due: soon
`,
		"missing id": `
spaces:
  - name: nameless
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			f, err := Load(strings.NewReader(doc))
			if err == nil {
				_, err = f.Collections()
			}
			assert.Error(t, err)
		})
	}
}

func TestProfileRowsRejectsUnknownRole(t *testing.T) {
	f := &Fixture{Profiles: []Profile{{ID: "u1", Role: "owner"}}}
	_, err := f.ProfileRows()
	assert.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	f, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	c, err := f.Collections()
	require.NoError(t, err)
	assert.Empty(t, c.Tasks)
}

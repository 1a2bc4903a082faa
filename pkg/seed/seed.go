// Package seed loads workspace fixtures from YAML, for demos, local development
// and the command line view renderer.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/raids-lab/agencyos/dao/model"
	"github.com/raids-lab/agencyos/pkg/viewmodel"
)

// Fixture is a workspace tree. Children inherit their parent's id.
type Fixture struct {
	Spaces   []Space   `yaml:"spaces"`
	Profiles []Profile `yaml:"profiles"`
}

type Space struct {
	ID        string   `yaml:"id"`
	Workspace string   `yaml:"workspace"`
	Name      string   `yaml:"name"`
	Color     string   `yaml:"color"`
	Folders   []Folder `yaml:"folders"`
}

type Folder struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Client   string    `yaml:"client"`
	Archived bool      `yaml:"archived"`
	Projects []Project `yaml:"projects"`
}

type Project struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Type          string   `yaml:"type"`
	Status        string   `yaml:"status"`
	Start         string   `yaml:"start"`
	Due           string   `yaml:"due"`
	Budget        *float64 `yaml:"budget"`
	ClientVisible bool     `yaml:"clientVisible"`
	Tasks         []Task   `yaml:"tasks"`
}

type Task struct {
	ID            string   `yaml:"id"`
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Status        string   `yaml:"status"`
	Priority      string   `yaml:"priority"`
	Assignees     []string `yaml:"assignees"`
	Tags          []string `yaml:"tags"`
	Start         string   `yaml:"start"`
	Due           string   `yaml:"due"`
	Estimate      float64  `yaml:"estimate"`
	Progress      float64  `yaml:"progress"`
	ClientVisible bool     `yaml:"clientVisible"`
}

type Profile struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Email         string   `yaml:"email"`
	Initials      string   `yaml:"initials"`
	Role          string   `yaml:"role"`
	ClientFolders []string `yaml:"clientFolders"`
}

// Load decodes a fixture. Unknown keys are rejected.
func Load(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f Fixture
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

func LoadFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Load(file)
}

// date parses an optional fixture date.
func date(field, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t := viewmodel.ParseDate(v)
	if t == nil {
		return nil, fmt.Errorf("%s: invalid date %q", field, v)
	}
	return t, nil
}

// Collections converts the fixture into model rows, filling defaults and
// rejecting unknown labels and duplicate ids.
func (f *Fixture) Collections() (viewmodel.Collections, error) {
	var c viewmodel.Collections
	seen := map[string]bool{}
	claim := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%s without id", kind)
		}
		if seen[id] {
			return fmt.Errorf("duplicate id %q", id)
		}
		seen[id] = true
		return nil
	}

	for _, s := range f.Spaces {
		if err := claim("space", s.ID); err != nil {
			return c, err
		}
		c.Spaces = append(c.Spaces, model.Space{Base: model.Base{ID: s.ID}, WorkspaceID: s.Workspace, Name: s.Name, Color: s.Color})
		for _, fo := range s.Folders {
			if err := claim("folder", fo.ID); err != nil {
				return c, err
			}
			folder := model.Folder{Base: model.Base{ID: fo.ID}, SpaceID: s.ID, Name: fo.Name, Archived: fo.Archived}
			if fo.Client != "" {
				folder.ClientName = lo.ToPtr(fo.Client)
			}
			c.Folders = append(c.Folders, folder)
			for i := range fo.Projects {
				if err := f.addProject(&c, claim, fo.ID, &fo.Projects[i]); err != nil {
					return c, err
				}
			}
		}
	}
	return c, nil
}

func (f *Fixture) addProject(c *viewmodel.Collections, claim func(string, string) error, folderID string, p *Project) error {
	if err := claim("project", p.ID); err != nil {
		return err
	}
	project := model.Project{
		Base:          model.Base{ID: p.ID},
		FolderID:      folderID,
		Name:          p.Name,
		Description:   p.Description,
		Type:          model.ProjectTypeClient,
		Status:        model.ProjectPlanning,
		Budget:        p.Budget,
		ClientVisible: p.ClientVisible,
	}
	if p.Type != "" {
		project.Type = model.ProjectType(p.Type)
	}
	if p.Status != "" {
		project.Status = model.ProjectStatus(p.Status)
	}
	if !project.Type.Valid() || !project.Status.Valid() {
		return fmt.Errorf("project %s: unknown type %q or status %q", p.ID, p.Type, p.Status)
	}
	var err error
	if project.StartDate, err = date("project "+p.ID, p.Start); err != nil {
		return err
	}
	if project.DueDate, err = date("project "+p.ID, p.Due); err != nil {
		return err
	}
	c.Projects = append(c.Projects, project)

	for i := range p.Tasks {
		t := &p.Tasks[i]
		if err := claim("task", t.ID); err != nil {
			return err
		}
		task := model.Task{
			Base:          model.Base{ID: t.ID},
			ProjectID:     p.ID,
			Title:         t.Title,
			Description:   t.Description,
			Status:        model.TaskTodo,
			Priority:      model.PriorityP3,
			AssigneeIDs:   datatypes.JSONSlice[string](lo.Compact(t.Assignees)),
			Tags:          datatypes.JSONSlice[string](lo.Compact(t.Tags)),
			EstimateHours: t.Estimate,
			Progress:      model.ClampProgress(t.Progress),
			ClientVisible: t.ClientVisible,
		}
		if t.Status != "" {
			task.Status = model.TaskStatus(t.Status)
		}
		if t.Priority != "" {
			task.Priority = model.Priority(t.Priority)
		}
		if !task.Status.Valid() || !task.Priority.Valid() {
			return fmt.Errorf("task %s: unknown status %q or priority %q", t.ID, t.Status, t.Priority)
		}
		if task.StartDate, err = date("task "+t.ID, t.Start); err != nil {
			return err
		}
		if task.DueDate, err = date("task "+t.ID, t.Due); err != nil {
			return err
		}
		c.Tasks = append(c.Tasks, task)
	}
	return nil
}

// ProfileRows converts the fixture profiles, defaulting the role to member.
func (f *Fixture) ProfileRows() ([]model.Profile, error) {
	out := make([]model.Profile, 0, len(f.Profiles))
	for _, p := range f.Profiles {
		row := model.Profile{
			Base:            model.Base{ID: p.ID},
			Name:            p.Name,
			Initials:        p.Initials,
			Role:            model.RoleMember,
			ClientFolderIDs: datatypes.JSONSlice[string](p.ClientFolders),
		}
		if p.Role != "" {
			row.Role = model.Role(p.Role)
		}
		if !row.Role.Valid() {
			return nil, fmt.Errorf("profile %s: unknown role %q", p.ID, p.Role)
		}
		if p.Email != "" {
			row.Email = lo.ToPtr(p.Email)
		}
		out = append(out, row)
	}
	return out, nil
}

// Counts is what Apply wrote.
type Counts struct {
	Spaces, Folders, Projects, Tasks, Profiles int
}

// Apply upserts the fixture in one transaction. Rows with an existing id are overwritten.
func Apply(ctx context.Context, db *gorm.DB, f *Fixture) (Counts, error) {
	c, err := f.Collections()
	if err != nil {
		return Counts{}, err
	}
	profiles, err := f.ProfileRows()
	if err != nil {
		return Counts{}, err
	}
	upsert := clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tx = tx.Clauses(upsert)
		batches := []struct {
			rows any
			n    int
		}{
			{&c.Spaces, len(c.Spaces)},
			{&c.Folders, len(c.Folders)},
			{&c.Projects, len(c.Projects)},
			{&c.Tasks, len(c.Tasks)},
			{&profiles, len(profiles)},
		}
		for _, b := range batches {
			if b.n == 0 {
				continue
			}
			if err := tx.Create(b.rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Counts{}, fmt.Errorf("apply fixture: %w", err)
	}
	return Counts{
		Spaces:   len(c.Spaces),
		Folders:  len(c.Folders),
		Projects: len(c.Projects),
		Tasks:    len(c.Tasks),
		Profiles: len(profiles),
	}, nil
}

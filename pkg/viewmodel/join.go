package viewmodel

import (
	"github.com/samber/lo"

	"github.com/raids-lab/agencyos/dao/model"
)

// Collections are the flat entity lists a view is built from.
type Collections struct {
	Spaces   []model.Space
	Folders  []model.Folder
	Projects []model.Project
	Tasks    []model.Task
}

type ancestry struct {
	spaces   map[string]model.Space
	folders  map[string]model.Folder
	projects map[string]model.Project
}

func newAncestry(c Collections) ancestry {
	return ancestry{
		spaces:   lo.KeyBy(c.Spaces, func(s model.Space) string { return s.ID }),
		folders:  lo.KeyBy(c.Folders, func(f model.Folder) string { return f.ID }),
		projects: lo.KeyBy(c.Projects, func(p model.Project) string { return p.ID }),
	}
}

// folderChain resolves a folder and its space. Each returned pointer is a fresh copy.
func (a ancestry) folderChain(folderID string) (*model.Folder, *model.Space) {
	folder, ok := a.folders[folderID]
	if !ok {
		return nil, nil
	}
	space, ok := a.spaces[folder.SpaceID]
	if !ok {
		return &folder, nil
	}
	return &folder, &space
}

// ResolveTaskRecords joins every task with its project, folder and space.
// The result has the same length and order as c.Tasks.
func ResolveTaskRecords(c Collections) []TaskRecord {
	a := newAncestry(c)
	records := make([]TaskRecord, len(c.Tasks))
	for i, task := range c.Tasks {
		records[i] = TaskRecord{Task: task}
		project, ok := a.projects[task.ProjectID]
		if !ok {
			continue
		}
		records[i].Project = &project
		records[i].Folder, records[i].Space = a.folderChain(project.FolderID)
	}
	return records
}

// ResolveProjectRecords joins every project with its folder and space and rolls up
// the tasks of c.Tasks that belong to it. The result follows the order of c.Projects.
func ResolveProjectRecords(c Collections) []ProjectRecord {
	a := newAncestry(c)
	tasksByProject := lo.GroupBy(c.Tasks, func(t model.Task) string { return t.ProjectID })

	records := make([]ProjectRecord, len(c.Projects))
	for i, project := range c.Projects {
		record := ProjectRecord{Project: project}
		record.Folder, record.Space = a.folderChain(project.FolderID)
		rollup(&record, tasksByProject[project.ID])
		records[i] = record
	}
	return records
}

func rollup(record *ProjectRecord, tasks []model.Task) {
	record.Assignees = []string{}
	record.Tags = []string{}
	if len(tasks) == 0 {
		return
	}
	var progress float64
	for i := range tasks {
		t := &tasks[i]
		record.TaskCount++
		if t.Status.Done() {
			record.CompletedCount++
		}
		progress += model.ClampProgress(t.Progress)
		record.EstimateHours += t.EstimateHours
		record.TrackedHours += t.TrackedHours
		record.Assignees = append(record.Assignees, t.AssigneeIDs...)
		record.Tags = append(record.Tags, t.Tags...)
	}
	record.Progress = progress / float64(record.TaskCount)
	record.Assignees = lo.Uniq(record.Assignees)
	record.Tags = lo.Uniq(record.Tags)
}

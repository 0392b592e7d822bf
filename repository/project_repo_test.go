package repository

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectview/models"
)

func newProjectRepo(t *testing.T) (*ProjectRepository, sqlmock.Sqlmock, *FileStore) {
	t.Helper()
	db, mock := newMockDB(t)
	fs := NewFileStore(t.TempDir(), testLogger())
	return NewProjectRepository(db, fs, testLogger()), mock, fs
}

func TestProjectRepositoryCreateProject(t *testing.T) {
	repo, mock, fs := newProjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "projects"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "sub_projects"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "project_members"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	project := models.Project{Name: "Apollo", State: "Open"}
	subProject := models.SubProject{Notes: "phase one", ProjectVersion: "v1"}
	members := []models.ProjectMember{{MemberID: uuid.New(), RoleID: uuid.New()}}
	files := []*multipart.FileHeader{makeFileHeader(t, "photo.png", []byte("png-bytes"))}

	err := repo.CreateProject(&project, files, &subProject, members)
	require.NoError(t, err)

	// Children are keyed to the new project
	assert.Equal(t, project.ID, subProject.ProjectID)
	assert.Equal(t, project.ID, members[0].ProjectID)

	// The accepted upload is on disk and referenced in the file list
	require.NotEmpty(t, project.Files)
	assert.True(t, strings.HasSuffix(project.Files, ".png"))
	path, ok := fs.Path(project.ID.String(), project.Files)
	require.True(t, ok)
	assert.FileExists(t, path)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepositoryCreateProjectSkipsDisallowedFiles(t *testing.T) {
	repo, mock, _ := newProjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "projects"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "sub_projects"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	project := models.Project{Name: "Apollo", State: "Open"}
	subProject := models.SubProject{}
	files := []*multipart.FileHeader{makeFileHeader(t, "malware.exe", []byte("mz"))}

	err := repo.CreateProject(&project, files, &subProject, nil)
	require.NoError(t, err)

	// Rejected uploads are neither stored nor referenced
	assert.Empty(t, project.Files)
}

func TestProjectRepositoryCreateProjectRollbackCleansUpFiles(t *testing.T) {
	repo, mock, fs := newProjectRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "projects"`).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	project := models.Project{Name: "Apollo", State: "Open"}
	subProject := models.SubProject{}
	files := []*multipart.FileHeader{makeFileHeader(t, "photo.png", []byte("png-bytes"))}

	err := repo.CreateProject(&project, files, &subProject, nil)
	require.Error(t, err)

	// The file written before the failed transaction is gone again
	entries, readErr := os.ReadDir(filepath.Join(fs.root, "ProjectImages", project.ID.String()))
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestProjectRepositoryUpdateProjectReplacesFiles(t *testing.T) {
	repo, mock, fs := newProjectRepo(t)

	projectID := uuid.New()

	// Seed an existing upload that the update must replace
	_, _, err := fs.Store(projectID.String(), []*multipart.FileHeader{
		makeFileHeader(t, "old.jpg", []byte("old")),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "projects" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	project := models.Project{ID: projectID, Name: "Apollo", State: "Closed"}
	files := []*multipart.FileHeader{makeFileHeader(t, "new.png", []byte("new"))}

	require.NoError(t, repo.UpdateProject(&project, files))

	entries, err := os.ReadDir(filepath.Join(fs.root, "ProjectImages", projectID.String()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".png"))
	assert.Equal(t, entries[0].Name(), project.Files)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepositoryDeleteProjectRemovesDirectory(t *testing.T) {
	repo, mock, fs := newProjectRepo(t)

	projectID := uuid.New()
	_, _, err := fs.Store(projectID.String(), []*multipart.FileHeader{
		makeFileHeader(t, "photo.png", []byte("png-bytes")),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "projects" WHERE id = \$1`).
		WithArgs(projectID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.True(t, repo.DeleteProject(projectID))

	_, statErr := os.Stat(filepath.Join(fs.root, "ProjectImages", projectID.String()))
	assert.True(t, os.IsNotExist(statErr))
}

func TestProjectRepositoryDeleteProjectKeepsDirectoryOnFailure(t *testing.T) {
	repo, mock, fs := newProjectRepo(t)

	projectID := uuid.New()
	_, _, err := fs.Store(projectID.String(), []*multipart.FileHeader{
		makeFileHeader(t, "photo.png", []byte("png-bytes")),
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "projects" WHERE id = \$1`).
		WithArgs(projectID).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	assert.False(t, repo.DeleteProject(projectID))

	// Row deletion failed, so the files stay put
	entries, readErr := os.ReadDir(filepath.Join(fs.root, "ProjectImages", projectID.String()))
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
}

func TestProjectRepositorySearch(t *testing.T) {
	repo, mock, _ := newProjectRepo(t)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "projects" WHERE LOWER\(name\) LIKE \$1 OR LOWER\(state\) LIKE \$2`).
		WithArgs("%apollo%", "%apollo%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "notes", "files", "state"}).
			AddRow(id, "Apollo", "", "", "Open"))
	mock.ExpectQuery(`SELECT \* FROM "project_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "project_id", "role_id"}))
	mock.ExpectQuery(`SELECT \* FROM "sub_projects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "notes", "project_id"}))

	projects, err := repo.Search("Apollo")
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Apollo", projects[0].Name)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectRepositoryStatusCounts(t *testing.T) {
	repo, mock, _ := newProjectRepo(t)

	mock.ExpectQuery(`SELECT state AS status, COUNT\(\*\) AS count FROM "projects" GROUP BY "state"`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("Open", 2).
			AddRow("Closed", 1))

	counts, err := repo.StatusCounts()
	require.NoError(t, err)

	byStatus := map[string]int64{}
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
	}
	assert.Equal(t, int64(2), byStatus["Open"])
	assert.Equal(t, int64(1), byStatus["Closed"])
}

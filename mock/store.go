package mock

import (
	"fmt"
	"path"

	"github.com/dkubicek/preklad"
)

var _ preklad.OutputStore = (*OutputStore)(nil)

// OutputStore is an in-memory implementation of preklad.OutputStore.
// It records everything written to it so tests can assert on the run
// layout without touching the filesystem. Individual operations can be
// overridden through the function fields.
type OutputStore struct {
	Dir       string
	Images    map[string][]byte
	Cover     []byte
	CoverName string
	Content   string
	Markdown  string
	Metadata  *preklad.Result
	Manifest  *preklad.Result
	Readme    *preklad.Result

	SaveImageFn func(name string, body []byte) (string, error)
	SaveCoverFn func(name string, body []byte) (string, error)
}

// NewOutputStore creates an OutputStore pretending to live at dir.
func NewOutputStore(dir string) *OutputStore {
	return &OutputStore{
		Dir:    dir,
		Images: make(map[string][]byte),
	}
}

func (s *OutputStore) Path() string { return s.Dir }

func (s *OutputStore) SaveImage(name string, body []byte) (string, error) {
	if s.SaveImageFn != nil {
		return s.SaveImageFn(name, body)
	}
	ext := path.Ext(name)
	stem := name[:len(name)-len(ext)]
	rel := path.Join("images", name)
	for i := 1; ; i++ {
		if _, taken := s.Images[rel]; !taken {
			break
		}
		rel = path.Join("images", fmt.Sprintf("%s_%d%s", stem, i, ext))
	}
	s.Images[rel] = body
	return rel, nil
}

func (s *OutputStore) SaveCover(name string, body []byte) (string, error) {
	if s.SaveCoverFn != nil {
		return s.SaveCoverFn(name, body)
	}
	ext := path.Ext(name)
	if ext == "" {
		ext = ".jpg"
	}
	s.Cover = body
	s.CoverName = "header_image" + ext
	return s.CoverName, nil
}

func (s *OutputStore) WriteContent(html string) error {
	s.Content = html
	return nil
}

func (s *OutputStore) WriteMarkdown(md string) error {
	s.Markdown = md
	return nil
}

func (s *OutputStore) WriteMetadata(res *preklad.Result) error {
	s.Metadata = res
	return nil
}

func (s *OutputStore) WriteManifest(res *preklad.Result) error {
	s.Manifest = res
	return nil
}

func (s *OutputStore) WriteReadme(res *preklad.Result) error {
	s.Readme = res
	return nil
}

package data

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/bgraf/pagetags/util/dates"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var ErrNoSuchPage = errors.New("no such page")

// LandingPageID is the ID of the page that replaces the generated index.
const LandingPageID = "index"

type StoreOptions struct {
	// Headers maps field ids to header names, see ParseMeta.
	Headers map[string]string
	// OnMetaParsed is called for every page after its meta block was parsed.
	OnMetaParsed func(meta Meta)
}

type Store struct {
	RootDirectory string
	Pages         []*Page
	options       *StoreOptions
}

func NewStore(rootDirectory string, options *StoreOptions) (*Store, error) {
	if options == nil {
		options = &StoreOptions{Headers: DefaultHeaders()}
	}

	store := &Store{
		RootDirectory: rootDirectory,
		options:       options,
	}

	var err error
	store.Pages, err = store.LoadPages(rootDirectory)
	if err != nil {
		return nil, fmt.Errorf("load pages failed: %w", err)
	}

	return store, nil
}

// OrderPagesByDate orders pages newest first. Pages without date go last,
// ties are broken by ID.
func (s *Store) OrderPagesByDate() {
	sort.SliceStable(s.Pages, func(i, j int) bool {
		lhs, rhs := s.Pages[i], s.Pages[j]
		if !lhs.Date.Equal(rhs.Date) {
			return lhs.Date.After(rhs.Date)
		}

		return lhs.ID < rhs.ID
	})
}

func (s *Store) PageByGUID(guid uuid.UUID) *Page {
	for _, p := range s.Pages {
		if p.GUID == guid {
			return p
		}
	}

	return nil
}

func (s *Store) PageByID(id string) *Page {
	for _, p := range s.Pages {
		if p.ID == id {
			return p
		}
	}

	return nil
}

// LandingPage returns the visible page with LandingPageID, or nil.
func (s *Store) LandingPage() *Page {
	page := s.PageByID(LandingPageID)
	if page == nil || page.IsHidden() {
		return nil
	}

	return page
}

// VisiblePages returns the pages not marked hidden.
func (s *Store) VisiblePages() []*Page {
	pages := make([]*Page, 0, len(s.Pages))
	for _, p := range s.Pages {
		if !p.IsHidden() {
			pages = append(pages, p)
		}
	}

	return pages
}

// ReloadByGUID reads the page from disk again and replaces it in the store.
func (s *Store) ReloadByGUID(guid uuid.UUID) (*Page, error) {
	page := s.PageByGUID(guid)
	if page == nil {
		return nil, ErrNoSuchPage
	}

	newPage, err := s.LoadPage(page.Path)
	if err != nil {
		return nil, fmt.Errorf("reload page failed: %w", err)
	}

	newPage.GUID = page.GUID
	for i, p := range s.Pages {
		if p.GUID == newPage.GUID {
			s.Pages[i] = newPage
		}
	}

	return newPage, nil
}

func (s *Store) LoadPages(rootDirectory string) ([]*Page, error) {
	var pages []*Page

	err := filepath.WalkDir(rootDirectory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".md" {
			return nil
		}

		page, err := s.LoadPage(path)
		if err != nil {
			return fmt.Errorf("page '%s': %w", path, err)
		}

		pages = append(pages, page)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("could not load pages: %w", err)
	}

	return pages, nil
}

func (s *Store) LoadPage(path string) (*Page, error) {
	sourceText, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read source file: %w", err)
	}

	page := &Page{
		Path: path,
		ID:   s.pageID(path),
	}

	gmark := goldmark.New(
		goldmark.WithExtensions(
			meta.Meta,
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	var buffer bytes.Buffer

	pc := parser.NewContext()

	if err := gmark.Convert(sourceText, &buffer, parser.WithContext(pc)); err != nil {
		return nil, fmt.Errorf("could not convert markdown: %w", err)
	}

	rawMeta, err := meta.TryGet(pc)
	if err != nil {
		return nil, fmt.Errorf("could not parse meta block: %w", err)
	}

	page.Meta = ParseMeta(rawMeta, s.options.Headers)
	if s.options.OnMetaParsed != nil {
		s.options.OnMetaParsed(page.Meta)
	}

	page.HTML, err = goquery.NewDocumentFromReader(&buffer)
	if err != nil {
		return nil, fmt.Errorf("could not parse HTML: %w", err)
	}

	if err := populateFromMeta(page); err != nil {
		return nil, err
	}

	log.Debug().Str("id", page.ID).Str("title", page.Title).Msg("loaded page")

	return page, nil
}

// Fragment returns the HTML body of the page.
func (s *Store) Fragment(page *Page) (string, error) {
	fragment, err := page.HTML.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("extract body fragment: %w", err)
	}

	return fragment, nil
}

func (s *Store) pageID(path string) string {
	rel, err := filepath.Rel(s.RootDirectory, path)
	if err != nil {
		rel = filepath.Base(path)
	}

	return filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
}

func populateFromMeta(page *Page) error {
	page.Title = strings.TrimSpace(page.Meta.String(FieldTitle))
	if page.Title == "" {
		page.Title = strings.TrimSpace(page.HTML.Find("h1").First().Text())
	}
	if page.Title == "" {
		page.Title = page.ID
	}

	var err error

	switch date := page.Meta[FieldDate].(type) {
	case time.Time:
		page.Date = date
	case string:
		if date != "" {
			page.Date, err = dates.ParseDate(date)
			if err != nil {
				return fmt.Errorf("could not parse date: %w", err)
			}
		}
	}

	guidProvided := false
	if guidStr := page.Meta.String(FieldGUID); guidStr != "" {
		page.GUID, err = uuid.Parse(guidStr)
		if err == nil {
			guidProvided = true
		}
	}

	if !guidProvided {
		page.GUID = uuid.New()
	}

	return nil
}

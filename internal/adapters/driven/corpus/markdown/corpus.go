package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/handbook/internal/core/domain"
	"github.com/custodia-labs/handbook/internal/core/ports/driven"
	"github.com/custodia-labs/handbook/internal/logger"
)

// Ensure Corpus implements the interface.
var _ driven.CorpusProvider = (*Corpus)(nil)

// OrderFile is the optional navigation manifest at the corpus root.
const OrderFile = "order.yaml"

const (
	markdownExt    = ".md"
	frontMatterSep = "---"
)

// Corpus reads markdown documents from a file system.
type Corpus struct {
	fsys fs.FS
	root string
}

// NewCorpus creates a corpus rooted at dir on the local disk.
func NewCorpus(dir string) *Corpus {
	return &Corpus{fsys: os.DirFS(dir), root: dir}
}

// NewCorpusFS creates a corpus over an arbitrary file system.
func NewCorpusFS(fsys fs.FS) *Corpus {
	return &Corpus{fsys: fsys, root: "."}
}

// Root returns the directory the corpus reads from.
func (c *Corpus) Root() string {
	return c.root
}

// frontMatter holds the recognised front matter fields.
type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

// manifest is the order.yaml schema.
type manifest struct {
	Order []string `yaml:"order"`
}

// Documents walks the corpus and returns every markdown document.
func (c *Corpus) Documents(ctx context.Context) ([]domain.Document, error) {
	logger.Section("Corpus Load")

	if _, err := fs.Stat(c.fsys, "."); err != nil {
		return nil, fmt.Errorf("docs directory %s: %w", c.root, err)
	}

	var docs []domain.Document
	err := fs.WalkDir(c.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), markdownExt) {
			return nil
		}

		data, err := fs.ReadFile(c.fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		docs = append(docs, parseDocument(p, string(data)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err := c.readOrder()
	if err != nil {
		logger.Warn("Ignoring %s: %v", OrderFile, err)
	}
	docs = applyOrder(docs, order)

	logger.Debug("Loaded %d documents from %s", len(docs), c.root)
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nil
}

// parseDocument builds a document from a file's relative path and content.
func parseDocument(rel, content string) domain.Document {
	segments := strings.Split(strings.TrimSuffix(rel, markdownExt), "/")
	name := segments[len(segments)-1]

	meta, body := splitFrontMatter(rel, content)

	doc := domain.Document{
		Path:        segments,
		Title:       meta.Title,
		Description: meta.Description,
		Category:    meta.Category,
		Body:        body,
	}
	if doc.Title == "" {
		doc.Title = name
	}
	if doc.Category == "" {
		doc.Category = segments[0]
		if len(segments) > 1 {
			doc.Category = segments[len(segments)-2]
		}
	}
	return doc
}

// splitFrontMatter separates a leading YAML block from the body.
// Malformed front matter is logged and the whole file is used as body.
func splitFrontMatter(rel, content string) (frontMatter, string) {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var meta frontMatter
	if !strings.HasPrefix(content, frontMatterSep+"\n") {
		return meta, content
	}

	rest := content[len(frontMatterSep)+1:]
	var block, body string
	switch {
	case strings.HasPrefix(rest, frontMatterSep+"\n"):
		body = rest[len(frontMatterSep)+1:]
	case rest == frontMatterSep:
		body = ""
	default:
		end := strings.Index(rest, "\n"+frontMatterSep+"\n")
		if end >= 0 {
			block, body = rest[:end], rest[end+len(frontMatterSep)+2:]
		} else if strings.HasSuffix(rest, "\n"+frontMatterSep) {
			block = strings.TrimSuffix(rest, "\n"+frontMatterSep)
		} else {
			logger.Warn("%s: unterminated front matter", rel)
			return meta, content
		}
	}

	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		logger.Warn("%s: invalid front matter: %v", rel, err)
		return frontMatter{}, content
	}
	return meta, body
}

// readOrder parses order.yaml. A missing manifest is not an error.
func (c *Corpus) readOrder() ([]string, error) {
	data, err := fs.ReadFile(c.fsys, OrderFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m.Order, nil
}

// applyOrder moves listed documents to the front in manifest order.
// Unknown and repeated entries are skipped.
func applyOrder(docs []domain.Document, order []string) []domain.Document {
	if len(order) == 0 {
		return docs
	}

	index := make(map[string]int, len(docs))
	for i, d := range docs {
		index[d.Key()] = i
	}

	out := make([]domain.Document, 0, len(docs))
	used := make([]bool, len(docs))
	for _, entry := range order {
		key := path.Clean(strings.Trim(entry, "/"))
		i, ok := index[key]
		if !ok {
			logger.Debug("%s: no document %q", OrderFile, entry)
			continue
		}
		if used[i] {
			continue
		}
		used[i] = true
		out = append(out, docs[i])
	}
	for i, d := range docs {
		if !used[i] {
			out = append(out, d)
		}
	}
	return out
}

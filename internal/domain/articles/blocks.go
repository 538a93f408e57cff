package articles

import (
	"errors"
	"fmt"
	"sort"

	"storefront-cms/internal/domain/catalog"
	"storefront-cms/internal/domain/media"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlockType string

const (
	BlockText    BlockType = "TEXT"
	BlockImage   BlockType = "IMAGE"
	BlockProduct BlockType = "PRODUCT"
)

func (t BlockType) Valid() bool {
	switch t {
	case BlockText, BlockImage, BlockProduct:
		return true
	}
	return false
}

// BlockInput is the wire form of one block. Value is overloaded by type:
// the text body for TEXT, a media id for IMAGE, a product id for PRODUCT.
type BlockInput struct {
	ID         string    `json:"id,omitempty"`
	Type       BlockType `json:"type"`
	Value      string    `json:"value"`
	ProductTag string    `json:"productTag,omitempty"`
	Order      int       `json:"order"`
}

// ErrUnknownBlockType rejects any type outside TEXT / IMAGE / PRODUCT.
var ErrUnknownBlockType = errors.New("unknown content block type")

// ErrBadReference rejects IMAGE/PRODUCT values that cannot be an entity id,
// before the database sees them.
var ErrBadReference = errors.New("invalid reference")

// ValidationError reports the missing required field for a block type.
type ValidationError struct {
	Type  BlockType
	Field string
}

func (e *ValidationError) Error() string {
	switch e.Type {
	case BlockText:
		return "Text content is required for TEXT type"
	case BlockImage:
		return "Media ID is required for IMAGE type"
	case BlockProduct:
		return "Product ID is required for PRODUCT type"
	}
	return fmt.Sprintf("%s is required for %s type", e.Field, e.Type)
}

// ValidateBlock checks the type-specific required field and returns a block
// with the inapplicable fields nil, ready for storage. Order is carried over
// as submitted; dense renumbering is NormalizeOrder's job.
func ValidateBlock(in BlockInput) (ContentBlock, error) {
	if !in.Type.Valid() {
		return ContentBlock{}, fmt.Errorf("%w: %q", ErrUnknownBlockType, in.Type)
	}

	block := ContentBlock{
		Type:  in.Type,
		Order: in.Order,
	}

	switch in.Type {
	case BlockText:
		if in.Value == "" {
			return ContentBlock{}, &ValidationError{Type: BlockText, Field: "text"}
		}
		text := in.Value
		block.Text = &text
	case BlockImage:
		if in.Value == "" {
			return ContentBlock{}, &ValidationError{Type: BlockImage, Field: "mediaId"}
		}
		if _, err := uuid.Parse(in.Value); err != nil {
			return ContentBlock{}, fmt.Errorf("%w: media id %q", ErrBadReference, in.Value)
		}
		id := in.Value
		block.MediaID = &id
	case BlockProduct:
		if in.Value == "" {
			return ContentBlock{}, &ValidationError{Type: BlockProduct, Field: "productId"}
		}
		if _, err := uuid.Parse(in.Value); err != nil {
			return ContentBlock{}, fmt.Errorf("%w: product id %q", ErrBadReference, in.Value)
		}
		id := in.Value
		block.ProductID = &id
		if in.ProductTag != "" {
			tag := in.ProductTag
			block.ProductTag = &tag
		}
	}

	return block, nil
}

// NormalizeOrder sorts by the submitted order values (stable, so ties keep
// their submission sequence) and reassigns a dense 1..N ordering. Gaps,
// duplicates and negative values in the input are all tolerated.
func NormalizeOrder(blocks []BlockInput) []BlockInput {
	out := make([]BlockInput, len(blocks))
	copy(out, blocks)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})

	for i := range out {
		out[i].Order = i + 1
	}
	return out
}

// BuildBlocks normalizes ordering and validates every block. The returned
// set carries no IDs; those are assigned on insert.
func BuildBlocks(inputs []BlockInput) ([]ContentBlock, error) {
	normalized := NormalizeOrder(inputs)

	blocks := make([]ContentBlock, 0, len(normalized))
	for _, in := range normalized {
		block, err := ValidateBlock(in)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// ReplaceAll swaps an article's entire block set for the given one. It must
// run inside the caller's transaction together with the article update, so a
// failing insert (e.g. a dangling media reference) leaves the original set
// untouched.
func ReplaceAll(tx *gorm.DB, articleID string, blocks []ContentBlock) error {
	if err := tx.Where("article_id = ?", articleID).Delete(&ContentBlock{}).Error; err != nil {
		return err
	}
	if len(blocks) == 0 {
		return nil
	}

	for i := range blocks {
		blocks[i].ID = ""
		blocks[i].ArticleID = articleID
	}
	return tx.Create(&blocks).Error
}

// BlockView is the edit-friendly projection of a persisted block: Value is
// filled from the type-specific column and, for IMAGE/PRODUCT blocks, the
// referenced object is attached when the catalog has it.
type BlockView struct {
	ID         string           `json:"id"`
	Type       BlockType        `json:"type"`
	Value      string           `json:"value"`
	ProductTag string           `json:"productTag,omitempty"`
	Order      int              `json:"order"`
	Media      *media.Media     `json:"media,omitempty"`
	Product    *catalog.Product `json:"product,omitempty"`
}

// Hydrate projects persisted blocks for the editor or the storefront. The
// maps are optional in-memory catalogs; when nil (or missing an id) the
// block's own preloaded association is used, and a reference that resolves
// nowhere is simply left nil.
func Hydrate(blocks []ContentBlock, mediaByID map[string]*media.Media, productByID map[string]*catalog.Product) []BlockView {
	views := make([]BlockView, 0, len(blocks))
	for _, b := range blocks {
		view := BlockView{
			ID:    b.ID,
			Type:  b.Type,
			Value: b.Value(),
			Order: b.Order,
		}
		if b.ProductTag != nil {
			view.ProductTag = *b.ProductTag
		}

		switch b.Type {
		case BlockImage:
			if b.MediaID != nil {
				if m, ok := mediaByID[*b.MediaID]; ok {
					view.Media = m
				} else {
					view.Media = b.Media
				}
			}
		case BlockProduct:
			if b.ProductID != nil {
				if p, ok := productByID[*b.ProductID]; ok {
					view.Product = p
				} else {
					view.Product = b.Product
				}
			}
		}

		views = append(views, view)
	}
	return views
}

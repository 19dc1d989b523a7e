// Contentforge - Marketing Site Content Administration
// Copyright 2026 N. Kale
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/contentforge/contentforge

package store

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/contentforge/contentforge/internal/metrics"
	"github.com/contentforge/contentforge/internal/models"
	"github.com/contentforge/contentforge/internal/ordering"
)

// ErrReorderMismatch rejects a reorder whose ID list is not a permutation of
// the stored collection.
var ErrReorderMismatch = errors.New("reorder ids do not match stored collection")

// ListVideos returns every video with positions normalized to a contiguous
// zero-based sequence. Raw stored positions may be sparse (imports, deletes
// that predate renumbering); reads never expose that.
func (s *Store) ListVideos() ([]*models.Video, error) {
	videos, err := listDocs[models.Video](s, videoKeyPrefix)
	if err != nil {
		return nil, err
	}
	return ordering.Normalize(videos, 0), nil
}

// GetVideo returns one video by ID.
func (s *Store) GetVideo(id string) (*models.Video, error) {
	return getDoc[models.Video](s, videoKeyPrefix, id)
}

// CreateVideo assigns an ID and the end-of-collection position, then stores
// the video.
func (s *Store) CreateVideo(v *models.Video) error {
	n, err := countDocs(s, videoKeyPrefix)
	if err != nil {
		return err
	}
	v.ID = newID()
	v.Position = &n
	return putDoc(s, videoKeyPrefix, v.ID, v)
}

// UpdateVideo replaces a stored video. The position field is preserved from
// the stored copy; order changes go through ReorderVideos only.
func (s *Store) UpdateVideo(v *models.Video) error {
	stored, err := s.GetVideo(v.ID)
	if err != nil {
		return err
	}
	v.Position = stored.Position
	return putDoc(s, videoKeyPrefix, v.ID, v)
}

// DeleteVideo removes a video and renumbers the survivors so stored
// positions stay contiguous.
func (s *Store) DeleteVideo(id string) error {
	if err := deleteDoc(s, videoKeyPrefix, id); err != nil {
		return err
	}
	videos, err := listDocs[models.Video](s, videoKeyPrefix)
	if err != nil {
		return err
	}
	for _, v := range ordering.Normalize(videos, 0) {
		if err := putDoc(s, videoKeyPrefix, v.ID, v); err != nil {
			return err
		}
	}
	return nil
}

// ReorderVideos applies a full new order in one transaction: each video's
// position becomes its index in ids. The list must cover exactly the stored
// collection; an unknown or missing ID aborts the transaction with nothing
// applied.
func (s *Store) ReorderVideos(ids []string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		stored, err := countInTxn(txn, videoKeyPrefix)
		if err != nil {
			return err
		}
		if stored != len(ids) {
			return fmt.Errorf("%w: got %d ids, have %d videos", ErrReorderMismatch, len(ids), stored)
		}

		seen := make(map[string]struct{}, len(ids))
		for i, id := range ids {
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%w: duplicate video %q", ErrReorderMismatch, id)
			}
			seen[id] = struct{}{}

			key := []byte(videoKeyPrefix + id)
			item, err := txn.Get(key)
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: unknown video %q", ErrReorderMismatch, id)
			}
			if err != nil {
				return fmt.Errorf("get video %s: %w", id, err)
			}

			var v models.Video
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &v)
			}); err != nil {
				return fmt.Errorf("decode video %s: %w", id, err)
			}

			pos := i
			v.Position = &pos
			data, err := json.Marshal(&v)
			if err != nil {
				return fmt.Errorf("marshal video %s: %w", id, err)
			}
			if err := txn.Set(key, data); err != nil {
				return fmt.Errorf("set video %s: %w", id, err)
			}
		}
		return nil
	})
	metrics.RecordStoreOp("reorder", videoKeyPrefix, err)
	return err
}

func countInTxn(txn *badger.Txn, prefix string) (int, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)
	defer it.Close()
	n := 0
	for it.Rewind(); it.Valid(); it.Next() {
		n++
	}
	return n, nil
}

// ListFAQs returns the full FAQ pool. Namespacing and normalization are the
// reader's concern; the store returns what was written.
func (s *Store) ListFAQs() ([]*models.FAQ, error) {
	return listDocs[models.FAQ](s, faqKeyPrefix)
}

// GetFAQ returns one FAQ by ID.
func (s *Store) GetFAQ(id string) (*models.FAQ, error) {
	return getDoc[models.FAQ](s, faqKeyPrefix, id)
}

// CreateFAQ assigns an ID and stores the FAQ.
func (s *Store) CreateFAQ(f *models.FAQ) error {
	f.ID = newID()
	return putDoc(s, faqKeyPrefix, f.ID, f)
}

// UpdateFAQ replaces a stored FAQ. The FAQ must already exist.
func (s *Store) UpdateFAQ(f *models.FAQ) error {
	if _, err := s.GetFAQ(f.ID); err != nil {
		return err
	}
	return putDoc(s, faqKeyPrefix, f.ID, f)
}

// DeleteFAQ removes an FAQ.
func (s *Store) DeleteFAQ(id string) error {
	return deleteDoc(s, faqKeyPrefix, id)
}

// CountHomeFAQs counts FAQs flagged for the home page, excluding excludeID.
// The handler uses this to re-validate the home cap on writes.
func (s *Store) CountHomeFAQs(excludeID string) (int, error) {
	faqs, err := s.ListFAQs()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, f := range faqs {
		if f.IsHomeFaq && f.ID != excludeID {
			n++
		}
	}
	return n, nil
}

// ListBlogs returns every blog post.
func (s *Store) ListBlogs() ([]*models.Blog, error) {
	return listDocs[models.Blog](s, blogKeyPrefix)
}

// CreateBlog assigns an ID and stores the blog post.
func (s *Store) CreateBlog(b *models.Blog) error {
	b.ID = newID()
	return putDoc(s, blogKeyPrefix, b.ID, b)
}

// DeleteBlog removes a blog post.
func (s *Store) DeleteBlog(id string) error {
	return deleteDoc(s, blogKeyPrefix, id)
}

// ListCaseStudies returns every case study.
func (s *Store) ListCaseStudies() ([]*models.CaseStudy, error) {
	return listDocs[models.CaseStudy](s, caseStudyKeyPrefix)
}

// CreateCaseStudy assigns an ID and stores the case study.
func (s *Store) CreateCaseStudy(c *models.CaseStudy) error {
	c.ID = newID()
	return putDoc(s, caseStudyKeyPrefix, c.ID, c)
}

// DeleteCaseStudy removes a case study.
func (s *Store) DeleteCaseStudy(id string) error {
	return deleteDoc(s, caseStudyKeyPrefix, id)
}

// ListCareers returns every open position.
func (s *Store) ListCareers() ([]*models.Career, error) {
	return listDocs[models.Career](s, careerKeyPrefix)
}

// CreateCareer assigns an ID and stores the position.
func (s *Store) CreateCareer(c *models.Career) error {
	c.ID = newID()
	return putDoc(s, careerKeyPrefix, c.ID, c)
}

// UpdateCareer replaces a stored position. It must already exist.
func (s *Store) UpdateCareer(c *models.Career) error {
	if _, err := getDoc[models.Career](s, careerKeyPrefix, c.ID); err != nil {
		return err
	}
	return putDoc(s, careerKeyPrefix, c.ID, c)
}

// DeleteCareer removes a position.
func (s *Store) DeleteCareer(id string) error {
	return deleteDoc(s, careerKeyPrefix, id)
}

// GetServiceByTitle returns the service whose title matches exactly.
func (s *Store) GetServiceByTitle(title string) (*models.Service, error) {
	services, err := listDocs[models.Service](s, serviceKeyPrefix)
	if err != nil {
		return nil, err
	}
	for _, svc := range services {
		if svc.Title == title {
			return svc, nil
		}
	}
	return nil, fmt.Errorf("%w: service %q", ErrNotFound, title)
}

// ListServices returns every service.
func (s *Store) ListServices() ([]*models.Service, error) {
	return listDocs[models.Service](s, serviceKeyPrefix)
}

// CreateService assigns an ID and stores the service.
func (s *Store) CreateService(svc *models.Service) error {
	svc.ID = newID()
	return putDoc(s, serviceKeyPrefix, svc.ID, svc)
}

// DeleteService removes a service.
func (s *Store) DeleteService(id string) error {
	return deleteDoc(s, serviceKeyPrefix, id)
}

// ListSocialLinks returns every social media link.
func (s *Store) ListSocialLinks() ([]*models.SocialLink, error) {
	return listDocs[models.SocialLink](s, socialKeyPrefix)
}

// CreateSocialLink assigns an ID and stores the link.
func (s *Store) CreateSocialLink(l *models.SocialLink) error {
	l.ID = newID()
	return putDoc(s, socialKeyPrefix, l.ID, l)
}

// UpdateSocialLink replaces a stored link. It must already exist.
func (s *Store) UpdateSocialLink(l *models.SocialLink) error {
	if _, err := getDoc[models.SocialLink](s, socialKeyPrefix, l.ID); err != nil {
		return err
	}
	return putDoc(s, socialKeyPrefix, l.ID, l)
}

// DeleteSocialLink removes a link.
func (s *Store) DeleteSocialLink(id string) error {
	return deleteDoc(s, socialKeyPrefix, id)
}

// CreateTestimonial assigns an ID and stores the testimonial.
func (s *Store) CreateTestimonial(t *models.Testimonial) error {
	t.ID = newID()
	return putDoc(s, testimonialKeyPrefix, t.ID, t)
}

// UpdateTestimonial replaces a stored testimonial. It must already exist.
func (s *Store) UpdateTestimonial(t *models.Testimonial) error {
	if _, err := getDoc[models.Testimonial](s, testimonialKeyPrefix, t.ID); err != nil {
		return err
	}
	return putDoc(s, testimonialKeyPrefix, t.ID, t)
}

// ListTestimonials returns every testimonial.
func (s *Store) ListTestimonials() ([]*models.Testimonial, error) {
	return listDocs[models.Testimonial](s, testimonialKeyPrefix)
}

// GetOrganization returns the organization settings singleton. A store that
// was never written returns the zero value, not ErrNotFound.
func (s *Store) GetOrganization() (*models.Organization, error) {
	org, err := getDoc[models.Organization](s, organizationKey, "")
	if errors.Is(err, ErrNotFound) {
		return &models.Organization{}, nil
	}
	return org, err
}

// SaveOrganization replaces the organization settings singleton.
func (s *Store) SaveOrganization(org *models.Organization) error {
	return putDoc(s, organizationKey, "", org)
}

// ListCountryStats returns the per-country visit rows.
func (s *Store) ListCountryStats() ([]*models.CountryStat, error) {
	return listDocs[models.CountryStat](s, countryStatKeyPrefix)
}

// SaveCountryStat upserts one country's visit count, keyed by country name.
func (s *Store) SaveCountryStat(stat *models.CountryStat) error {
	return putDoc(s, countryStatKeyPrefix, stat.Country, stat)
}

// TotalCounts aggregates per-collection document counts for the dashboard
// landing page.
func (s *Store) TotalCounts() (*models.TotalCounts, error) {
	counts := &models.TotalCounts{}
	for _, c := range []struct {
		prefix string
		dst    *int
	}{
		{blogKeyPrefix, &counts.Blogs},
		{caseStudyKeyPrefix, &counts.CaseStudies},
		{careerKeyPrefix, &counts.Careers},
		{faqKeyPrefix, &counts.FAQs},
		{serviceKeyPrefix, &counts.Services},
		{socialKeyPrefix, &counts.SocialLinks},
		{testimonialKeyPrefix, &counts.Testimonials},
		{videoKeyPrefix, &counts.Videos},
	} {
		n, err := countDocs(s, c.prefix)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return counts, nil
}

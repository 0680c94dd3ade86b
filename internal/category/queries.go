package category

const collectionFragment = `
fragment collection on Collection {
  handle
  title
  description
  image {
    url
    altText
    width
    height
  }
  updatedAt
}
`

const getCollectionsQuery = `
query getCollections {
  collections(first: 100, sortKey: TITLE) {
    edges {
      node { ...collection }
    }
  }
}
` + collectionFragment

const getCollectionQuery = `
query getCollection($handle: String!) {
  collection(handle: $handle) {
    ...collection
  }
}
` + collectionFragment

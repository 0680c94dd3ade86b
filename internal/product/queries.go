package product

const imageFragment = `
fragment image on Image {
  url
  altText
  width
  height
}
`

const productFragment = `
fragment product on Product {
  id
  handle
  availableForSale
  title
  description
  descriptionHtml
  priceRange {
    maxVariantPrice { amount currencyCode }
    minVariantPrice { amount currencyCode }
  }
  variants(first: 250) {
    edges {
      node {
        id
        title
        availableForSale
        price { amount currencyCode }
      }
    }
  }
  featuredImage { ...image }
  images(first: 20) {
    edges {
      node { ...image }
    }
  }
  tags
  updatedAt
}
` + imageFragment

const getProductQuery = `
query getProduct($handle: String!) {
  product(handle: $handle) {
    ...product
  }
}
` + productFragment

const getProductsQuery = `
query getProducts($sortKey: ProductSortKeys, $reverse: Boolean, $query: String) {
  products(sortKey: $sortKey, reverse: $reverse, query: $query, first: 100) {
    edges {
      node { ...product }
    }
  }
}
` + productFragment

const getCollectionProductsQuery = `
query getCollectionProducts($handle: String!, $sortKey: ProductCollectionSortKeys, $reverse: Boolean) {
  collection(handle: $handle) {
    products(sortKey: $sortKey, reverse: $reverse, first: 100) {
      edges {
        node { ...product }
      }
    }
  }
}
` + productFragment
